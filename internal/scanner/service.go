package scanner

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/catharsis02/usc.kiit-shopvision/internal/catalog"
	"github.com/catharsis02/usc.kiit-shopvision/internal/classifier"
)

// Classifier is the external recognition call the service depends on.
type Classifier interface {
	Classify(ctx context.Context, image []byte, filename string) (*classifier.Result, error)
}

// ObjectStore keeps uploaded scan images so synthesized items and bill
// history have a display URL.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body *bytes.Reader, contentType string) (string, error)
}

// ScanResult is everything one scan produces: the resolved candidate
// plus the full ranked prediction list for display.
type ScanResult struct {
	Candidate   Candidate               `json:"candidate"`
	Predictions []classifier.Prediction `json:"predictions"`
	ImageURL    string                  `json:"image_url,omitempty"`
}

type Service struct {
	classifier Classifier
	store      ObjectStore
	catalog    []catalog.Item
}

func NewService(cl Classifier, store ObjectStore, items []catalog.Item) *Service {
	return &Service{
		classifier: cl,
		store:      store,
		catalog:    items,
	}
}

// Scan runs one classify-and-resolve round trip. The image is retained
// in object storage first so the candidate carries a stable URL; a
// storage failure only costs the display image, not the scan. A
// classifier failure aborts the scan with no state change anywhere.
func (s *Service) Scan(ctx context.Context, franchiseID string, image []byte, filename string) (*ScanResult, error) {
	imageURL := s.retainImage(ctx, franchiseID, image, filename)

	result, err := s.classifier.Classify(ctx, image, filename)
	if err != nil {
		return nil, err
	}

	candidate := Resolve(result, imageURL, s.catalog)

	return &ScanResult{
		Candidate:   candidate,
		Predictions: result.Predictions,
		ImageURL:    imageURL,
	}, nil
}

func (s *Service) retainImage(ctx context.Context, franchiseID string, image []byte, filename string) string {
	if s.store == nil {
		return ""
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("scans/%s/%s%s", franchiseID, uuid.New().String(), ext)

	url, err := s.store.Upload(ctx, key, bytes.NewReader(image), contentType)
	if err != nil {
		log.Printf("scan image upload failed for franchise %s: %v", franchiseID, err)
		return ""
	}
	return url
}
