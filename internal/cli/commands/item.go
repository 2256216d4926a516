package commands

import (
	"Catalogue/internal/config"
	"context"
)

type itemCmd struct{}

func (itemCmd) Name() string { return "item" }
func (itemCmd) Description() string {
	return "Показать запись по id или выбранную"
}
func (itemCmd) Usage() string { return "item [<id>]" }

func (itemCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	id := ""
	if len(args) == 1 {
		id = args[0]
	}
	d, done, err := openDashboard(cfg)
	if err != nil {
		return err
	}
	defer done()

	it, err := d.Show(ctx, id)
	if err != nil {
		return err
	}
	printItem(it)
	return nil
}

type selectCmd struct{}

func (selectCmd) Name() string        { return "select" }
func (selectCmd) Description() string { return "Выбрать запись" }
func (selectCmd) Usage() string       { return "select <id>" }

func (selectCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	d, done, err := openDashboard(cfg)
	if err != nil {
		return err
	}
	defer done()

	it, err := d.Select(ctx, args[0])
	if err != nil {
		return err
	}
	printItem(it)
	return nil
}

func init() {
	RegisterCmd(itemCmd{})
	RegisterCmd(selectCmd{})
}
