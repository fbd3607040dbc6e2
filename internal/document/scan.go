/**
* Name: 			scan.go
* Description: 		Document scan page: upload validation and the simulated OCR analysis
* Workflow: 		ValidateUpload -> Scan.Attach -> Scan.Analyze (single-flight, delayed)
 */

package document

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"slices"
	"strings"
	"sync"
	"time"

	"LawHub_LegalAssistant/internal/flight"
	"LawHub_LegalAssistant/internal/models"

	"go.uber.org/zap"
)

// MaxUploadSize is the limit advertised on the scan page.
const MaxUploadSize = 10 << 20

var AllowedMediaTypes = []string{"image/jpeg", "image/png", "application/pdf"}

var (
	ErrUnsupportedFileType = errors.New("please upload a JPG, PNG, or PDF file")
	ErrFileTooLarge        = errors.New("file exceeds the 10MB limit")
	ErrNoDocument          = errors.New("no document uploaded")
)

type Upload struct {
	Filename  string `json:"filename"`
	MediaType string `json:"media_type"`
	Size      int64  `json:"size"`
}

type Analysis struct {
	ExtractedText   string         `json:"extracted_text"`
	LawTopic        string         `json:"law_topic"`
	Explanation     string         `json:"explanation"`
	Recommendations []string       `json:"recommendations"`
	Urgency         models.Urgency `json:"urgency"`
}

// sampleAnalysis is returned for every document; content is never parsed.
var sampleAnalysis = Analysis{
	ExtractedText: "TRAFFIC VIOLATION NOTICE\n\nViolation: Speeding\nSpeed Limit: 60 km/h\nRecorded Speed: 85 km/h\n" +
		"Fine Amount: $200\nDue Date: 30 days from issue date\nLocation: Sheikh Zayed Road, Dubai",
	LawTopic: "Traffic Violations",
	Explanation: "This is a speeding violation notice issued in Dubai, UAE. The violation occurred on " +
		"Sheikh Zayed Road where you exceeded the speed limit by 25 km/h.",
	Recommendations: []string{
		"Pay the fine within 30 days to avoid additional penalties",
		"Consider attending a traffic awareness course to reduce points",
		"Check if you're eligible for early payment discount",
		"Ensure your driving license is valid and up to date",
	},
	Urgency: models.UrgencyMedium,
}

// ValidateUpload checks the declared media type against the allow-list and the size limit.
func ValidateUpload(u Upload) (Upload, error) {
	mediaType, _, err := mime.ParseMediaType(u.MediaType)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %q", ErrUnsupportedFileType, u.MediaType)
	}
	mediaType = strings.ToLower(mediaType)
	if !slices.Contains(AllowedMediaTypes, mediaType) {
		return Upload{}, fmt.Errorf("%w: %q", ErrUnsupportedFileType, mediaType)
	}
	if u.Size > MaxUploadSize {
		return Upload{}, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, u.Size)
	}
	u.MediaType = mediaType
	return u, nil
}

// Scan is one client's document scan page.
type Scan struct {
	mu       sync.Mutex
	upload   *Upload
	analysis *Analysis

	gate  *flight.Gate
	delay time.Duration
	log   *zap.Logger
}

type ScanState struct {
	Upload    *Upload   `json:"upload,omitempty"`
	Analyzing bool      `json:"analyzing"`
	Analysis  *Analysis `json:"analysis,omitempty"`
}

func NewScan(delay time.Duration, log *zap.Logger) *Scan {
	return &Scan{
		gate:  flight.NewGate(),
		delay: delay,
		log:   log,
	}
}

// Attach validates u and makes it the page's document, discarding any earlier result.
func (s *Scan) Attach(u Upload) error {
	valid, err := ValidateUpload(u)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upload = &valid
	s.analysis = nil
	s.log.Debug("Document attached", zap.String("filename", valid.Filename), zap.String("media_type", valid.MediaType))
	return nil
}

// Analyze runs the simulated analysis. A second call while one is pending returns flight.ErrBusy.
func (s *Scan) Analyze(ctx context.Context) (Analysis, error) {
	var result Analysis
	err := s.gate.Do(func() error {
		s.mu.Lock()
		upload := s.upload
		s.mu.Unlock()
		if upload == nil {
			return ErrNoDocument
		}

		if err := flight.Wait(ctx, s.delay); err != nil {
			return err
		}

		result = sampleAnalysis
		result.Recommendations = slices.Clone(sampleAnalysis.Recommendations)

		s.mu.Lock()
		s.analysis = &result
		s.mu.Unlock()
		s.log.Info("Document analyzed", zap.String("filename", upload.Filename), zap.String("law_topic", result.LawTopic))
		return nil
	})
	return result, err
}

func (s *Scan) State() ScanState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ScanState{
		Upload:    s.upload,
		Analyzing: s.gate.Busy(),
		Analysis:  s.analysis,
	}
}
