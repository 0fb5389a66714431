// Command nomadform-preview loads a YAML form definition, walks it as
// terminal prompts and runs the submission pipeline against the collected
// answers, printing the resulting form data or validation errors. It also
// renders the form markup to a file on request.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nomadlabs/nomadforms"
	"github.com/nomadlabs/nomadforms/pkg/form"
	"github.com/nomadlabs/nomadforms/pkg/renderers/tui"
)

func main() {
	definition := flag.String("definition", "form.yaml", "YAML form definition path")
	html := flag.String("html", "", "write rendered form markup to this file and exit")
	flag.Parse()

	ctx := context.Background()

	data, err := os.ReadFile(*definition)
	if err != nil {
		log.Fatalf("read definition: %v", err)
	}

	def, err := nomadforms.ParseDefinition(data)
	if err != nil {
		log.Fatalf("parse definition: %v", err)
	}

	if *html != "" {
		renderMarkup(def, *html)
		return
	}

	// The preview has no browser round-trip to carry a token through, so
	// nonce verification is disabled for the replay below.
	preview, err := def.Form(form.WithoutNonce())
	if err != nil {
		log.Fatalf("build form: %v", err)
	}

	values, err := tui.New().Run(ctx, preview)
	if err != nil {
		log.Fatalf("walkthrough: %v", err)
	}

	submitted, err := def.Form(
		form.WithoutNonce(),
		form.WithRequest(form.Request{Method: preview.Method(), Values: values}),
	)
	if err != nil {
		log.Fatalf("build form: %v", err)
	}
	if err := submitted.Process(ctx); err != nil {
		log.Fatalf("process: %v", err)
	}

	switch submitted.Validity() {
	case form.ValidityValid:
		out, err := json.MarshalIndent(submitted.FormData(), "", "  ")
		if err != nil {
			log.Fatalf("encode form data: %v", err)
		}
		fmt.Println(string(out))
	case form.ValidityInvalid:
		fmt.Fprintln(os.Stderr, "validation failed:")
		for _, message := range submitted.Messages() {
			fmt.Fprintf(os.Stderr, "  - %s\n", message)
		}
		os.Exit(1)
	default:
		log.Fatal("submission was not routed to the form")
	}
}

func renderMarkup(def *nomadforms.Definition, path string) {
	f, err := def.Form()
	if err != nil {
		log.Fatalf("build form: %v", err)
	}
	markup, err := f.Render()
	if err != nil {
		log.Fatalf("render form: %v", err)
	}
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		log.Fatalf("write markup: %v", err)
	}
	fmt.Printf("Form written to %s\n", path)
}
