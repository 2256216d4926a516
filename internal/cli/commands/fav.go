package commands

import (
	"Catalogue/internal/config"
	"context"
	"fmt"
)

type favCmd struct{}

func (favCmd) Name() string { return "fav" }
func (favCmd) Description() string {
	return "Переключить избранное для записи (по умолчанию выбранной)"
}
func (favCmd) Usage() string { return "fav [<id>]" }

func (favCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	on, v, err := d.ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}
	if on {
		fmt.Fprintln(Out, "★ Added to favorites")
	} else {
		fmt.Fprintln(Out, "☆ Removed from favorites")
	}
	printView(v)
	return nil
}

type resetCmd struct{}

func (resetCmd) Name() string        { return "reset" }
func (resetCmd) Description() string { return "Сбросить фильтры и выбор" }
func (resetCmd) Usage() string       { return "reset" }

func (resetCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	d, done, err := openDashboard(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := d.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Filters reset")
	return nil
}

func init() {
	RegisterCmd(favCmd{})
	RegisterCmd(resetCmd{})
}
