package commands

import (
	"Catalogue/internal/cli/service"
	"Catalogue/internal/config"
	"context"
	"flag"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать каталог; флаги меняют и сохраняют фильтры"
}
func (itemsCmd) Usage() string {
	return "items [--search s] [--category c|All] [--favorites=true|false] [--sort KEY]"
}

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("items")
	search := fs.String("search", "", "")
	category := fs.String("category", "", "")
	favorites := fs.Bool("favorites", false, "")
	sortKey := fs.String("sort", "", "")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	// меняем только явно заданные фильтры
	var patch service.FilterPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "search":
			patch.Search = search
		case "category":
			patch.Category = category
		case "favorites":
			patch.FavoritesOnly = favorites
		case "sort":
			patch.Sort = sortKey
		}
	})

	d, done, err := openDashboard(cfg)
	if err != nil {
		return err
	}
	defer done()

	v, err := d.Refresh(ctx, patch)
	if err != nil {
		return err
	}
	printView(v)
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
