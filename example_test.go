package pdfpress_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pressworks/pdfpress"
)

// Convert a file to a named PDF and inspect the diagnostics.
func Example() {
	conv := pdfpress.New("/usr/bin/docpress")
	conv.AddStyleSheet("print.css")
	conv.Title = "Quarterly Report"

	res, err := conv.ConvertToFile(context.Background(), "report.pdf", "report.html")
	if err != nil {
		log.Fatal(err) // the engine could not be started
	}
	if !res.Success {
		for _, m := range res.Errors() {
			fmt.Println(m.Location, m.Text)
		}
	}
}

// Stream an in-memory document straight to standard output.
func ExampleConverter_ConvertStringToWriter() {
	conv := pdfpress.New("/usr/bin/docpress")

	res, err := conv.ConvertStringToWriter(context.Background(),
		"<html><body><h1>Invoice</h1></body></html>", os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Success)
}

// Render page images instead of a PDF.
func ExampleConverter_Rasterize() {
	conv := pdfpress.New("/usr/bin/docpress")
	conv.SetRasterFormat(pdfpress.RasterPNG)
	if err := conv.SetRasterDPI(150); err != nil {
		log.Fatal(err)
	}

	res, err := conv.Rasterize(context.Background(), "page_%02d.png", "slides.html")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Success)
}
