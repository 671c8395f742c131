// file: internals/features/finance/invoices/service/pdf_service.go
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"sukaza_backend/internals/configs"
	model "sukaza_backend/internals/features/finance/invoices/model"
)

var ErrRendererUnavailable = errors.New("pdf renderer is not configured")

var pdfHTTPClient = &http.Client{Timeout: 20 * time.Second}

// RenderPDF sends the invoice to the external renderer and returns the PDF
// bytes. The renderer is a black box: we post the invoice JSON and take
// whatever document it gives back.
func RenderPDF(ctx context.Context, inv *model.InvoiceModel) ([]byte, error) {
	base := configs.PDFRendererBaseURL
	if base == "" {
		return nil, ErrRendererUnavailable
	}

	payload, err := sonic.Marshal(inv)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/render/invoice", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := pdfHTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("renderer returned %d: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
