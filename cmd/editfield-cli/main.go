package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	editfield "github.com/goliatone/go-editfield"
	"github.com/goliatone/go-editfield/pkg/field"
	"github.com/goliatone/go-editfield/pkg/renderers/tui"
)

func main() {
	resource := flag.String("resource", "worksheet", "resource type: worksheet or bundle")
	baseURL := flag.String("base-url", "http://localhost:2900", "backend origin")
	uuid := flag.String("uuid", "", "resource UUID")
	fieldName := flag.String("field", "", "field to edit, e.g. title or description")
	value := flag.String("value", "", "current value shown before editing")
	label := flag.String("label", "", "prompt label (defaults to the field name)")
	readOnly := flag.Bool("read-only", false, "render the field without allowing edits")
	confirm := flag.Bool("confirm", false, "ask before saving the new value")
	flag.Parse()

	if strings.TrimSpace(*uuid) == "" || strings.TrimSpace(*fieldName) == "" {
		flag.Usage()
		log.Fatalf("both -uuid and -field are required")
	}

	prompt := *label
	if prompt == "" {
		prompt = *fieldName
	}

	options := []editfield.Option{
		editfield.WithValue(*value),
		editfield.WithLabel(prompt),
		editfield.WithCanEdit(!*readOnly),
	}

	var (
		widget *editfield.Widget
		err    error
	)
	switch *resource {
	case "worksheet":
		widget, err = editfield.NewWorksheetField(*baseURL, *uuid, *fieldName, options...)
	case "bundle":
		widget, err = editfield.NewBundleField(*baseURL, *uuid, *fieldName, options...)
	default:
		log.Fatalf("unknown resource %q: want worksheet or bundle", *resource)
	}
	if err != nil {
		log.Fatalf("Failed to build field widget: %v", err)
	}

	var editorOptions []tui.Option
	if *confirm {
		editorOptions = append(editorOptions, tui.WithCommitConfirmation())
	}
	editor, err := tui.New(editorOptions...)
	if err != nil {
		log.Fatalf("Failed to build editor: %v", err)
	}

	committed, err := editor.Edit(context.Background(), widget)
	switch {
	case errors.Is(err, tui.ErrAborted):
		fmt.Println("Edit aborted; value unchanged.")
		os.Exit(1)
	case errors.Is(err, field.ErrNotEditable):
		fmt.Printf("%s is read-only.\n", prompt)
		os.Exit(1)
	case err != nil:
		log.Fatalf("Edit failed: %v", err)
	}

	if committed {
		fmt.Printf("%s updated to %q.\n", prompt, widget.Value())
	}
}
