// Command storefront is the SeedToServe terminal client: account creation and
// login, the farmer dashboard flows for categories and products, and the
// marketing landing output.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/seedtoserve/storefront/internal/api"
	"github.com/seedtoserve/storefront/internal/config"
	"github.com/seedtoserve/storefront/internal/forms"
	"github.com/seedtoserve/storefront/internal/logging"
	"github.com/seedtoserve/storefront/internal/screens"
	"github.com/seedtoserve/storefront/internal/session"
	"github.com/seedtoserve/storefront/internal/validation"
)

type cli struct {
	client   *api.Client
	sessions *session.Manager
	notify   forms.Notifier
	in       *bufio.Reader
}

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(configuration.LogLevel)
	ctx := logging.IntoContext(context.Background(), logger)

	sessions, err := session.NewManager(session.NewFileStore(configuration.SessionFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := &cli{
		client:   api.NewClient(configuration.APIBaseURL, configuration.HTTPTimeout),
		sessions: sessions,
		notify:   forms.WriterNotifier{W: os.Stdout},
		in:       bufio.NewReader(os.Stdin),
	}

	command := "landing"
	args := []string{}
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	var runErr error
	switch command {
	case "landing":
		app.landing()
	case "register":
		runErr = app.register(ctx, args)
	case "login":
		runErr = app.login(ctx, args)
	case "logout":
		runErr = app.logout()
	case "whoami":
		app.whoami()
	case "categories":
		runErr = app.categories(ctx, args)
	case "products":
		runErr = app.products(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		app.presentError(runErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: storefront <command> [flags]

Commands:
  landing                           show the SeedToServe landing page
  register                          create an account (Farmer or Buyer)
  login                             sign in and store the session
  logout                            clear the stored session
  whoami                            show the current session
  categories list|add|edit|delete   manage product categories
  products list|add|edit|delete     manage products`)
}

// landing is the CLI's stand-in for the marketing landing page.
func (a *cli) landing() {
	fmt.Println("SeedToServe — from the farm gate to your plate")
	fmt.Println()
	fmt.Println("A marketplace connecting farmers and buyers.")
	fmt.Println("  - Farmers: manage categories and products from your dashboard")
	fmt.Println("  - Buyers: fresh produce straight from the source")
	fmt.Println()
	if a.sessions.LoggedIn() {
		profile := a.sessions.Current().Profile
		fmt.Printf("Signed in as %s (%s). Try `storefront categories list`.\n", profile.Email, profile.Role)
	} else {
		fmt.Println("Get started with `storefront register` or `storefront login`.")
	}
}

func (a *cli) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	regType := fs.String("type", "", "registration type: Farmer or Buyer")
	first := fs.String("first-name", "", "first name")
	last := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	confirm := fs.String("confirm-password", "", "password confirmation")
	fs.Parse(args)

	form := forms.NewRegisterForm(a.client)
	form.SetDraft(forms.RegisterDraft{
		RegistrationType: *regType,
		FirstName:        *first,
		LastName:         *last,
		Email:            *email,
		Password:         *password,
		ConfirmPassword:  *confirm,
	})

	message, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	a.notify.Success(message)
	fmt.Println("You can now sign in with `storefront login`.")
	return nil
}

func (a *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	form := forms.NewLoginForm(a.client, a.sessions)
	form.SetDraft(forms.LoginDraft{Email: *email, Password: *password})

	result, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	a.notify.Success(result.Message)

	switch result.Destination {
	case forms.DestinationBuyer:
		fmt.Println("Welcome to SeedToServe! Browse the marketplace for fresh produce.")
	default:
		fmt.Println("Welcome Farmer! Manage your shop with `storefront categories` and `storefront products`.")
	}
	return nil
}

func (a *cli) logout() error {
	if err := a.sessions.ClearSession(); err != nil {
		return err
	}
	a.notify.Success("Logged out")
	return nil
}

func (a *cli) whoami() {
	if !a.sessions.LoggedIn() {
		fmt.Println("Not signed in.")
		return
	}
	profile := a.sessions.Current().Profile
	fmt.Printf("%s %s <%s> — %s\n", profile.FirstName, profile.LastName, profile.Email, profile.Role)
}

func (a *cli) token() (string, error) {
	if !a.sessions.LoggedIn() {
		return "", errors.New("not signed in: run `storefront login` first")
	}
	return a.sessions.Token(), nil
}

func (a *cli) categories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: storefront categories list|add|edit|delete")
	}
	token, err := a.token()
	if err != nil {
		return err
	}

	screen := screens.NewCategoryScreen(a.client)

	switch args[0] {
	case "list":
		if err := screen.Load(ctx, token); err != nil {
			return err
		}
		printCategories(screen)
		return nil

	case "add":
		fs := flag.NewFlagSet("categories add", flag.ExitOnError)
		name := fs.String("name", "", "category name")
		description := fs.String("description", "", "category description")
		fs.Parse(args[1:])

		if err := screen.Load(ctx, token); err != nil {
			return err
		}
		screen.Form.SetDraft(forms.CategoryDraft{Name: *name, Description: *description})
		created, err := screen.Add(ctx, token)
		if err != nil {
			return err
		}
		a.notify.Success("Category added successfully")
		fmt.Printf("  %s — %s\n", created.Name, created.Description)
		return nil

	case "edit":
		fs := flag.NewFlagSet("categories edit", flag.ExitOnError)
		name := fs.String("name", "", "category to edit (current name)")
		newName := fs.String("new-name", "", "new name (empty keeps the current one)")
		description := fs.String("description", "", "new description")
		fs.Parse(args[1:])
		set := setFlags(fs)

		if err := screen.Load(ctx, token); err != nil {
			return err
		}
		index := indexOfCategory(screen, *name)
		if index < 0 {
			return fmt.Errorf("no category named %q", *name)
		}
		if err := screen.List.EnterEdit(index); err != nil {
			return err
		}
		draft, err := screen.List.Draft()
		if err != nil {
			return err
		}
		// Omitted flags keep the current values.
		if *newName != "" {
			draft.Name = *newName
		}
		if set["description"] {
			draft.Description = *description
		}
		if err := screen.List.SetDraft(draft); err != nil {
			return err
		}
		updated, err := screen.CommitEdit(ctx, token)
		if err != nil {
			screen.List.CancelEdit()
			return err
		}
		a.notify.Success("Category updated successfully")
		fmt.Printf("  %s — %s\n", updated.Name, updated.Description)
		return nil

	case "delete":
		fs := flag.NewFlagSet("categories delete", flag.ExitOnError)
		name := fs.String("name", "", "category to delete")
		yes := fs.Bool("yes", false, "skip the confirmation prompt")
		fs.Parse(args[1:])

		if !*yes && !a.confirm(fmt.Sprintf("Are you sure you want to delete %q?", *name)) {
			fmt.Println("Aborted.")
			return nil
		}
		if err := screen.Load(ctx, token); err != nil {
			return err
		}
		if err := screen.Delete(ctx, token, *name); err != nil {
			return err
		}
		a.notify.Success("Category deleted")
		return nil

	default:
		return fmt.Errorf("unknown categories subcommand %q", args[0])
	}
}

func (a *cli) products(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: storefront products list|add|edit|delete")
	}
	token, err := a.token()
	if err != nil {
		return err
	}

	screen := screens.NewProductScreen(a.client)

	switch args[0] {
	case "list":
		if err := screen.Load(ctx, token); err != nil {
			return err
		}
		printProducts(screen)
		return nil

	case "add":
		fs := flag.NewFlagSet("products add", flag.ExitOnError)
		category := fs.String("category", "", "category name")
		name := fs.String("name", "", "product name")
		description := fs.String("description", "", "product description")
		price := fs.String("price", "", "price")
		stock := fs.String("stock", "", "stock count")
		image := fs.String("image", "", "path to an image file (optional)")
		fs.Parse(args[1:])

		if err := screen.Load(ctx, token); err != nil {
			return err
		}
		screen.Form.SetDraft(forms.ProductDraft{
			CategoryName: *category,
			Name:         *name,
			Description:  *description,
			Price:        *price,
			Stock:        *stock,
			ImagePath:    *image,
		})
		created, err := screen.Add(ctx, token)
		if err != nil {
			return err
		}
		a.notify.Success("Product added successfully")
		fmt.Printf("  %s (%s) — %.2f, %d in stock\n", created.Name, created.CategoryName, created.Price, created.Stock)
		return nil

	case "edit":
		fs := flag.NewFlagSet("products edit", flag.ExitOnError)
		name := fs.String("name", "", "product to edit (current name)")
		newName := fs.String("new-name", "", "new name (empty keeps the current one)")
		description := fs.String("description", "", "new description")
		price := fs.Float64("price", 0, "new price")
		stock := fs.Int("stock", 0, "new stock count")
		fs.Parse(args[1:])
		set := setFlags(fs)

		if err := screen.Load(ctx, token); err != nil {
			return err
		}
		index := indexOfProduct(screen, *name)
		if index < 0 {
			return fmt.Errorf("no product named %q", *name)
		}
		if err := screen.List.EnterEdit(index); err != nil {
			return err
		}
		draft, err := screen.List.Draft()
		if err != nil {
			return err
		}
		// Omitted flags keep the current values.
		if *newName != "" {
			draft.Name = *newName
		}
		if set["description"] {
			draft.Description = *description
		}
		if set["price"] {
			draft.Price = *price
		}
		if set["stock"] {
			draft.Stock = *stock
		}
		if err := screen.List.SetDraft(draft); err != nil {
			return err
		}
		updated, err := screen.CommitEdit(ctx, token)
		if err != nil {
			screen.List.CancelEdit()
			return err
		}
		a.notify.Success("Product updated")
		fmt.Printf("  %s (%s) — %.2f, %d in stock\n", updated.Name, updated.CategoryName, updated.Price, updated.Stock)
		return nil

	case "delete":
		fs := flag.NewFlagSet("products delete", flag.ExitOnError)
		name := fs.String("name", "", "product to delete")
		yes := fs.Bool("yes", false, "skip the confirmation prompt")
		fs.Parse(args[1:])

		if !*yes && !a.confirm(fmt.Sprintf("Delete product %q?", *name)) {
			fmt.Println("Aborted.")
			return nil
		}
		if err := screen.Load(ctx, token); err != nil {
			return err
		}
		if err := screen.Delete(ctx, token, *name); err != nil {
			return err
		}
		a.notify.Success("Product deleted")
		return nil

	default:
		return fmt.Errorf("unknown products subcommand %q", args[0])
	}
}

// setFlags reports which flags were explicitly passed on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func (a *cli) confirm(prompt string) bool {
	fmt.Print(prompt + " [y/N]: ")
	line, err := a.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// presentError renders errors the way the web client toasts them: field
// messages for validation failures, the server's message for API rejections,
// a generic line for anything else.
func (a *cli) presentError(err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for field := range verrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			a.notify.Error(field + ": " + verrs[field])
		}
		return
	}

	var serverErr *api.ServerError
	if errors.As(err, &serverErr) {
		a.notify.Error(serverErr.Message)
		return
	}
	a.notify.Error(err.Error())
}

func printCategories(screen *screens.CategoryScreen) {
	items := screen.List.Items()
	if len(items) == 0 {
		fmt.Println("No categories yet.")
		return
	}
	fmt.Printf("%-20s %s\n", "NAME", "DESCRIPTION")
	for _, category := range items {
		fmt.Printf("%-20s %s\n", category.Name, category.Description)
	}
}

func printProducts(screen *screens.ProductScreen) {
	items := screen.List.Items()
	if len(items) == 0 {
		fmt.Println("No products yet.")
		return
	}
	fmt.Printf("%-20s %-15s %10s %7s  %s\n", "NAME", "CATEGORY", "PRICE", "STOCK", "DESCRIPTION")
	for _, product := range items {
		fmt.Printf("%-20s %-15s %10.2f %7d  %s\n",
			product.Name, product.CategoryName, product.Price, product.Stock, product.Description)
	}
}

func indexOfCategory(screen *screens.CategoryScreen, name string) int {
	for i, category := range screen.List.Items() {
		if category.Name == name {
			return i
		}
	}
	return -1
}

func indexOfProduct(screen *screens.ProductScreen, name string) int {
	for i, product := range screen.List.Items() {
		if product.Name == name {
			return i
		}
	}
	return -1
}
