// cmd/laundry-cli/main.go
//
// Interactive terminal front-end for Laundry King: quantity picker, contact
// and pickup-location entry, OTP login and order submission. All state
// machines live in the workflow packages; this file only renders and routes
// input on a single goroutine.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"laundry-king/internal/backend"
	"laundry-king/internal/cart"
	"laundry-king/internal/catalog"
	"laundry-king/internal/common/config"
	"laundry-king/internal/common/logger"
	"laundry-king/internal/shell"
	autolocate "laundry-king/internal/workflows/auto-locate"
	ordersubmit "laundry-king/internal/workflows/order-submit"
	otplogin "laundry-king/internal/workflows/otp-login"
)

func notify(message string) {
	fmt.Printf("  !! %s\n", message)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	cat := catalog.MustDefault()
	if cfg.Catalog.RegistryPath != "" {
		cat, err = catalog.LoadRegistry(cfg.Catalog.RegistryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load catalog registry: %v\n", err)
			os.Exit(1)
		}
	}

	api := backend.NewClient(cfg.Backend, log)
	store := cart.NewStore(cat)
	session := shell.NewSession()

	locateCfg := autolocate.DefaultConfig()
	locateCfg.GeocodeURL = cfg.Locate.GeocodeURL
	locateCfg.LookupURL = cfg.Locate.LookupURL

	resolver := autolocate.NewResolver(autolocate.Dependencies{
		Geolocator: autolocate.NewIPLocator(locateCfg),
		Geocoder:   autolocate.NewNominatimGeocoder(locateCfg),
		Logger:     log,
		Notify:     notify,
	})

	login := otplogin.NewFlow(otplogin.Dependencies{
		Auth:      api,
		Logger:    log,
		OnSuccess: session.LoginNotifier(),
		Notify:    notify,
	})

	workflow := ordersubmit.NewWorkflow(ordersubmit.Dependencies{
		Store:     store,
		Location:  resolver,
		Submitter: api,
		Logger:    log,
		Notify:    notify,
	})

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("👑 Laundry King — place your order")
	printCatalog(store)
	printHelp()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "list":
			printCatalog(store)
		case "+":
			store.Increment(arg)
			printCatalog(store)
		case "-":
			store.Decrement(arg)
			printCatalog(store)
		case "phone":
			workflow.SetPhone(arg)
		case "addr":
			resolver.SetManualAddress(arg)
		case "detect":
			if err := resolver.Detect(ctx); err == nil {
				fmt.Printf("  📍 %s\n", resolver.Address())
			}
		case "login":
			runLogin(ctx, scanner, login, session)
		case "submit":
			submit(ctx, workflow)
		case "new":
			workflow.StartNewOrder()
			fmt.Println("  fresh order started")
		case "status":
			printStatus(workflow, resolver, session)
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Println("  unknown command, try 'help'")
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func printCatalog(store *cart.Store) {
	for _, item := range store.Catalog().Items() {
		fmt.Printf("  %s %-8s ₹%-4d x%d\n", item.Icon, item.Name, item.Price, store.Count(item.ID))
	}
	fmt.Printf("  total: ₹%d\n", store.Total())
}

func printStatus(workflow *ordersubmit.Workflow, resolver *autolocate.Resolver, session *shell.Session) {
	fmt.Printf("  state: %s  phone: %q  address: %q  logged in: %v\n",
		workflow.State(), workflow.Phone(), resolver.Address(), session.LoggedIn())
}

func printHelp() {
	fmt.Println(`  commands:
    + <item>     add one (shirt, tshirt, pants, dress, jacket)
    - <item>     remove one
    phone <n>    set contact phone
    addr <text>  set pickup address
    detect       auto-detect pickup location
    login        OTP login
    submit       submit the order
    new          start a new order after confirmation
    status       show workflow state
    quit`)
}

func runLogin(ctx context.Context, scanner *bufio.Scanner, flow *otplogin.Flow, session *shell.Session) {
	if session.LoggedIn() {
		fmt.Println("  already logged in, King!")
		return
	}

	fmt.Print("  phone number: ")
	if !scanner.Scan() {
		return
	}
	flow.InputPhone(scanner.Text())

	if err := flow.RequestCode(ctx); err != nil {
		return
	}
	fmt.Printf("  we sent a code to +91 %s\n", flow.Phone())

	for flow.Step() == otplogin.StepCodeEntry {
		fmt.Print("  code (or 'back'): ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "back" {
			flow.Cancel()
			return
		}
		flow.InputCode(input)
		if err := flow.VerifyCode(ctx); err == nil {
			fmt.Println("  ✅ logged in")
		}
	}
}

func submit(ctx context.Context, workflow *ordersubmit.Workflow) {
	if err := workflow.Submit(ctx); err != nil {
		return
	}
	confirmation := workflow.Confirmation()
	if confirmation == nil {
		return
	}
	fmt.Println("  🎉 Order Received! Thank you for choosing Laundry King.")
	fmt.Printf("  your order for %d items has been placed. Total: ₹%d\n",
		confirmation.ItemCount(), confirmation.Total)
	fmt.Println("  type 'new' to place another order")
}
