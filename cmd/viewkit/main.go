package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/goliatone/go-viewkit"
	"github.com/goliatone/go-viewkit/components/preview"
	"github.com/goliatone/go-viewkit/pkg/component"
	"github.com/goliatone/go-viewkit/pkg/component/faq"
)

func main() {
	name := flag.String("component", "", "component to render (checkboxlist, faq)")
	paramsPath := flag.String("params", "", "YAML or JSON file with component parameters")
	entriesPath := flag.String("entries", "", "YAML file with FAQ entries")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for missing parameters")
	serve := flag.String("serve", "", "serve component previews on this address instead of rendering once")
	flag.Parse()

	ctx := context.Background()

	kit, err := viewkit.New()
	if err != nil {
		log.Fatalf("Failed to build kit: %v", err)
	}

	if *serve != "" {
		if err := servePreviews(kit, *serve); err != nil {
			log.Fatalf("Preview server stopped: %v", err)
		}
		return
	}

	params := component.Params{}
	if *paramsPath != "" {
		params, err = loadParams(*paramsPath)
		if err != nil {
			log.Fatalf("Failed to read parameters: %v", err)
		}
	}

	if *entriesPath != "" {
		entries, err := faq.LoadFS(os.DirFS(filepath.Dir(*entriesPath)), filepath.Base(*entriesPath))
		if err != nil {
			log.Fatalf("Failed to read FAQ entries: %v", err)
		}
		params[faq.ParamEntries] = entries
		if *name == "" {
			*name = faq.Name
		}
	}

	if *interactive {
		*name, err = complete(ctx, newSurveyPrompter(), kit.Names(), *name, params)
		if errors.Is(err, errAborted) {
			os.Exit(130)
		}
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	if *name == "" {
		log.Fatalf("missing -component (one of %v)", kit.Names())
	}

	html, err := kit.Render(ctx, *name, params, viewkit.NewPageState())
	if err != nil {
		log.Fatalf("Failed to render %s: %v", *name, err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, html, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Component written to %s\n", *output)
	} else {
		fmt.Println(string(html))
	}
}

func servePreviews(kit *viewkit.Kit, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(viewkit.DefaultAssetBase, http.StripPrefix(viewkit.DefaultAssetBase, http.FileServerFS(viewkit.AssetsFS())))
	pattern, err := preview.RegisterRoutes(mux, kit, "/", preview.WithDocument(true))
	if err != nil {
		return err
	}
	log.Printf("Serving component previews on http://%s%s{name}", addr, pattern)
	return http.ListenAndServe(addr, mux)
}
