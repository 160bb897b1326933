package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/backfill"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/blob"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/compute"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/extract"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/middleware"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/store"

	"github.com/gin-gonic/gin"
)

// BackfillHandler drives the backfill flow: scan or manual draft in, enriched
// draft out, totals on demand, finalized invoice on save.
type BackfillHandler struct {
	Coordinator *backfill.Coordinator
	Gateway     *store.Gateway
	Parser      extract.Parser
	Uploader    blob.Uploader
}

type draftResponse struct {
	Draft  models.InvoiceDraft `json:"draft"`
	Totals compute.Totals      `json:"totals"`
}

// Scan receives the legacy document, stores it, runs extraction, and returns
// an enriched draft. Extraction failure is surfaced as an OCR-path failure;
// no draft is ever built from a failed or garbled parse.
func (h *BackfillHandler) Scan(c *gin.Context) {
	retailerID := middleware.RetailerID(c)

	file, header, err := c.Request.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document file required"})
		return
	}
	defer file.Close()

	url, err := h.Uploader.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		log.Printf("backfill: document upload failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to store the scanned document"})
		return
	}

	draft, err := h.Parser.Parse(c.Request.Context(), url)
	if err != nil {
		log.Printf("backfill: extraction failed for %s: %v", url, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not read the scanned invoice. Try a clearer scan or enter it manually."})
		return
	}

	h.respondEnriched(c, retailerID, draft)
}

// CreateDraft is the manual path: the body carries a typed (possibly empty)
// draft that is enriched the same way a scanned one is.
func (h *BackfillHandler) CreateDraft(c *gin.Context) {
	var draft models.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondEnriched(c, middleware.RetailerID(c), draft)
}

func (h *BackfillHandler) respondEnriched(c *gin.Context, retailerID uint, draft models.InvoiceDraft) {
	session := h.Coordinator.NewSession(draft)
	// Enrichment is best-effort; a fetch failure inside is already tolerated.
	if err := session.Enrich(c.Request.Context(), retailerID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draftResponse{Draft: session.Draft(), Totals: session.Totals()})
}

// Compute returns totals for an edited draft. Pure; called on every edit that
// touches money.
func (h *BackfillHandler) Compute(c *gin.Context) {
	var draft models.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, compute.Aggregate(draft.LineItems, draft.TaxPercent))
}

// Save finalizes the draft and persists it exactly once.
func (h *BackfillHandler) Save(c *gin.Context) {
	var draft models.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := h.Coordinator.NewSession(draft)
	inv, err := session.Save(c.Request.Context(), middleware.RetailerID(c))
	if err != nil {
		if errors.Is(err, backfill.ErrNoIdentity) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in again before saving this invoice. Your draft has not been lost."})
			return
		}
		log.Printf("backfill: save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save invoice"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Invoice backfilled successfully",
		"invoice_id": inv.InvoiceID,
		"invoice":    inv,
	})
}

// ListInvoices pages through the retailer's finalized backfilled invoices.
func (h *BackfillHandler) ListInvoices(c *gin.Context) {
	retailerID := middleware.RetailerID(c)

	page := 1
	limit := 10
	if c.Query("page") != "" {
		fmt.Sscanf(c.Query("page"), "%d", &page)
	}
	if c.Query("limit") != "" {
		fmt.Sscanf(c.Query("limit"), "%d", &limit)
	}

	invoices, total, err := h.Gateway.ListInvoices(c.Request.Context(), retailerID, limit, (page-1)*limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  invoices,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
