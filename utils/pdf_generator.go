package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// GenerateDocketPDF renders the four assembled copy views of a docket into a
// single A4 PDF. Each copy stays whole; a copy that would be cut moves to the
// next page.
func GenerateDocketPDF(branch *models.BranchProfile, views []models.DocumentView) ([]byte, error) {
	contacts := ""
	if branch != nil {
		for _, m := range branch.Mobile {
			contacts += m.Number + "(" + m.Label + "), "
		}
		if len(contacts) > 2 {
			contacts = contacts[:len(contacts)-2]
		}
	}

	tmpl, err := template.ParseFiles("templates/docket_template.html")
	if err != nil {
		return nil, err
	}

	var fullHTML bytes.Buffer
	for i, view := range views {
		data := models.DocketPDFData{
			Branch:    branch,
			View:      view,
			Contacts:  contacts,
			CopyIndex: i + 1,
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, err
		}

		fullHTML.WriteString("<div class='docket-copy'>")
		fullHTML.Write(buf.Bytes())
		fullHTML.WriteString("</div>")
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.docket-copy {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body>` + fullHTML.String() + `</body></html>`

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "docket_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
