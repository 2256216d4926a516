package commands

import (
	"Catalogue/internal/cli/api"
	"Catalogue/internal/cli/bootstrap"
	"Catalogue/internal/cli/model"
	"Catalogue/internal/cli/service"
	"Catalogue/internal/config"
	"flag"
	"fmt"
	"io"
)

// openDashboard собирает дашборд: локальное состояние + клиент сервера.
func openDashboard(cfg *config.Config) (*service.Dashboard, func() error, error) {
	store, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	client := api.NewClient(cfg.ServerURL)
	return service.NewDashboard(client, store, cfg.LocalFavorites), done, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func printView(v service.View) {
	st := v.State
	category := st.Category
	if category == "" {
		category = model.AllCategories
	}
	favs := "off"
	if st.FavoritesOnly {
		favs = "on"
	}
	fmt.Fprintf(Out, "Filters: search=%q category=%s favorites=%s sort=%s\n", st.Search, category, favs, st.Sort)

	if len(v.Items) == 0 {
		fmt.Fprintln(Out, "No items match the current filters.")
		return
	}
	for _, it := range v.Items {
		cursor := " "
		if v.Selected != nil && v.Selected.ID == it.ID {
			cursor = ">"
		}
		fmt.Fprintf(Out, "%s %s %-24s %-16s %10s  %s\n", cursor, star(it.Favorite), it.Name, it.Category, formatPrice(it.Price), it.ID)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(v.Items))
}

func printItem(it *model.Item) {
	fmt.Fprintf(Out, "id:        %s\n", it.ID)
	fmt.Fprintf(Out, "name:      %s\n", it.Name)
	fmt.Fprintf(Out, "category:  %s\n", it.Category)
	fmt.Fprintf(Out, "price:     %s\n", formatPrice(it.Price))
	fmt.Fprintf(Out, "favorite:  %t\n", it.Favorite)
	fmt.Fprintf(Out, "created:   %s\n", it.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(Out, "updated:   %s\n", it.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
}

func star(on bool) string {
	if on {
		return "★"
	}
	return "☆"
}

func formatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}
