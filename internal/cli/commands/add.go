package commands

import (
	"Catalogue/internal/cli/service"
	"Catalogue/internal/config"
	"context"
	"fmt"
)

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Добавить запись, выбрать её и показать обновлённый список"
}
func (addCmd) Usage() string { return "add [--favorite] <name> <category> <price>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("add")
	favorite := fs.Bool("favorite", false, "")
	if err := fs.Parse(args); err != nil || fs.NArg() != 3 {
		return ErrUsage
	}
	form := service.CreateForm{
		Name:     fs.Arg(0),
		Category: fs.Arg(1),
		Price:    fs.Arg(2),
		Favorite: *favorite,
	}

	d, done, err := openDashboard(cfg)
	if err != nil {
		return err
	}
	defer done()

	it, err := d.Create(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(it)

	// после записи список перечитывается
	v, err := d.Refresh(ctx, service.FilterPatch{})
	if err != nil {
		return err
	}
	fmt.Fprintln(Out)
	printView(v)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
