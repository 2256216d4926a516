package commands

import (
	"Catalogue/internal/config"
	"context"
	"fmt"
)

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "Показать категории для фильтра" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	d, done, err := openDashboard(cfg)
	if err != nil {
		return err
	}
	defer done()

	cats, err := d.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		fmt.Fprintf(Out, "- %s\n", c)
	}
	return nil
}

func init() { RegisterCmd(categoriesCmd{}) }
