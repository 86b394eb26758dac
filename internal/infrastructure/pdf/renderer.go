package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentData carries everything the placeholder contract document shows
type DocumentData struct {
	ContractID          uuid.UUID
	CounterpartyName    string
	CounterpartyAddress string
	CounterpartyEmail   string
	OfferName           string
	Price               decimal.Decimal
	Currency            string
	BillingPeriod       string
}

// Renderer writes placeholder contract PDFs below a storage root.
// Final contract templates are out of scope; the rendered document only
// mirrors the data the draft was created from.
type Renderer struct {
	root string
}

// NewRenderer creates a renderer rooted at the given storage directory
func NewRenderer(root string) *Renderer {
	return &Renderer{root: root}
}

// RenderDraft writes the draft document for a contract and returns the
// path relative to the storage root.
func (r *Renderer) RenderDraft(data DocumentData) (string, error) {
	return r.render(data, "CONTRACT DRAFT", "draft.pdf", nil)
}

// RenderSigned writes the signed document for a contract and returns the
// path relative to the storage root.
func (r *Renderer) RenderSigned(data DocumentData, signedAt time.Time) (string, error) {
	return r.render(data, "SIGNED CONTRACT", "signed.pdf", &signedAt)
}

// AbsolutePath resolves a stored relative path against the storage root
func (r *Renderer) AbsolutePath(relative string) string {
	return filepath.Join(r.root, relative)
}

func (r *Renderer) render(data DocumentData, title, filename string, signedAt *time.Time) (string, error) {
	dir := filepath.Join(r.root, "contracts", data.ContractID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create contract storage dir: %w", err)
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 7, value, "", "L", false)
	}

	line("Contract ID:", data.ContractID.String())
	line("Generated:", time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))
	if signedAt != nil {
		line("Signed:", signedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(0, 8, "Counterparty", "", 1, "L", false, 0, "")
	line("Name:", data.CounterpartyName)
	line("Address:", data.CounterpartyAddress)
	line("Email:", data.CounterpartyEmail)
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(0, 8, "Offer", "", 1, "L", false, 0, "")
	line("Plan:", data.OfferName)
	line("Price:", fmt.Sprintf("%s %s", data.Price.StringFixed(2), data.Currency))
	line("Billing Period:", data.BillingPeriod)
	doc.Ln(8)

	doc.SetFont("Helvetica", "I", 10)
	doc.MultiCell(0, 6, "This is a placeholder contract document. "+
		"Final contract templates will be provided in a future release.", "", "L", false)

	path := filepath.Join(dir, filename)
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}

	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
