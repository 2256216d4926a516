package commands

import (
	"Catalogue/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage: аргументы команды неверны, диспетчер печатает Usage и выходит с кодом 2.
var ErrUsage = errors.New("usage")

// Command — подкоманда catalogue-cli (items, fav, add ...).
type Command interface {
	// Name возвращает имя, которое вводит пользователь.
	Name() string
	// Description: одна строка для общей справки.
	Description() string
	// Usage — синтаксис, например "select <id>".
	Usage() string
	// Run получает аргументы без имени команды. Ошибки дашборда печатаются как есть.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — куда команды печатают результат. В тестах подменяется буфером.
var Out io.Writer = os.Stdout

// RegisterCmd добавляет команду из init() её файла. Повторное имя вызывает panic.
func RegisterCmd(cmd Command) {
	name := strings.ToLower(cmd.Name())
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("commands: duplicate command %q", name))
	}
	registry[name] = cmd
}

// Get ищет команду по имени без учёта регистра.
func Get(name string) (Command, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// List возвращает команды по алфавиту для справки.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage собирает общую справку catalogue-cli.
func FormatGlobalUsage() string {
	lines := []string{
		"Catalogue CLI",
		"",
		"Usage:",
		"  catalogue-cli [--base-url <host:port>] [--local-favorites] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-58s %s", c.Usage(), c.Description()))
	}
	lines = append(lines, "", "Filters and the selected item are kept between runs; see `reset`.")
	return strings.Join(lines, "\n") + "\n"
}
