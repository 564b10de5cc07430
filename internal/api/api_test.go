package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saikat0506/Rezume-AI/internal/highlight"
	"github.com/saikat0506/Rezume-AI/internal/styles"
	"github.com/saikat0506/Rezume-AI/pkg/types"
)

type fakeAI struct {
	tailored    string
	review      *types.Review
	keywords    string
	keywordsErr error
	tailorErr   error
	reviewErr   error

	gotInput types.TailorInput
}

func (f *fakeAI) ExtractKeywords(ctx context.Context, jobDesc string) (string, error) {
	return f.keywords, f.keywordsErr
}

func (f *fakeAI) Tailor(ctx context.Context, in types.TailorInput) (string, error) {
	f.gotInput = in
	return f.tailored, f.tailorErr
}

func (f *fakeAI) Review(ctx context.Context, tailoredResume, jobTitle, jobDesc string) (*types.Review, error) {
	return f.review, f.reviewErr
}

func newTestServer(ai Tailorer) *Server {
	return NewServer(0, ai, styles.NewRegistry())
}

func multipartBody(t *testing.T, resume, jobTitle, jobDesc, style string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	if err != nil {
		t.Fatal(err)
	}
	fmt.Fprint(fw, resume)
	mw.WriteField("jobTitle", jobTitle)
	mw.WriteField("jobDesc", jobDesc)
	if style != "" {
		mw.WriteField("style", style)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHandleTailor(t *testing.T) {
	ai := &fakeAI{
		keywords: "Go, distributed systems",
		tailored: "Senior Software Engineer",
		review:   &types.Review{ATSScore: 88, Review: "Strong match."},
	}
	handler := newTestServer(ai).Handler()

	body, contentType := multipartBody(t, "Software Engineer", "Senior Software Engineer", "Build Go services", "concise")
	req := httptest.NewRequest(http.MethodPost, "/api/tailor", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result types.TailorResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.TailoredResume != "Senior Software Engineer" {
		t.Errorf("tailored = %q", result.TailoredResume)
	}
	if result.Keywords != "Go, distributed systems" {
		t.Errorf("keywords = %q", result.Keywords)
	}
	if result.Review == nil || result.Review.ATSScore != 88 {
		t.Errorf("review = %+v", result.Review)
	}
	if len(result.Segments) == 0 || result.DiffHTML == "" {
		t.Errorf("expected diff output, got %d segments", len(result.Segments))
	}

	// The concise style guidance and extracted keywords must reach the model.
	if !strings.Contains(ai.gotInput.StyleGuidance, "concise") {
		t.Errorf("style guidance = %q", ai.gotInput.StyleGuidance)
	}
	if ai.gotInput.Keywords != "Go, distributed systems" {
		t.Errorf("keywords passed to tailor = %q", ai.gotInput.Keywords)
	}
}

func TestHandleTailorDegradesOnKeywordAndReviewFailure(t *testing.T) {
	ai := &fakeAI{
		tailored:    "tailored text",
		keywordsErr: fmt.Errorf("quota exceeded"),
		reviewErr:   fmt.Errorf("quota exceeded"),
	}
	handler := newTestServer(ai).Handler()

	body, contentType := multipartBody(t, "original text", "Engineer", "desc", "")
	req := httptest.NewRequest(http.MethodPost, "/api/tailor", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite keyword/review failures", rec.Code)
	}
	var result types.TailorResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Review != nil {
		t.Errorf("review should be omitted on failure, got %+v", result.Review)
	}
	if result.Keywords != "" {
		t.Errorf("keywords should be empty on failure, got %q", result.Keywords)
	}
}

func TestHandleTailorMissingFields(t *testing.T) {
	handler := newTestServer(&fakeAI{}).Handler()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("resume", "resume.txt")
	fmt.Fprint(fw, "resume text")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/tailor", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleTailorUnsupportedFile(t *testing.T) {
	handler := newTestServer(&fakeAI{}).Handler()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("resume", "resume.png")
	fmt.Fprint(fw, "binary")
	mw.WriteField("jobTitle", "Engineer")
	mw.WriteField("jobDesc", "desc")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/tailor", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", rec.Code)
	}
}

func TestHandleHighlight(t *testing.T) {
	handler := newTestServer(&fakeAI{}).Handler()

	payload := `{"original": "Experienced Software Engineer", "revised": "Software Engineer"}`
	req := httptest.NewRequest(http.MethodPost, "/api/highlight", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp types.HighlightResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	want := []highlight.Segment{
		{Kind: highlight.Removed, Text: "Experienced "},
		{Kind: highlight.Unchanged, Text: "Software Engineer"},
	}
	if len(resp.Segments) != len(want) {
		t.Fatalf("segments = %+v, want %+v", resp.Segments, want)
	}
	for i := range want {
		if resp.Segments[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, resp.Segments[i], want[i])
		}
	}
	if !strings.Contains(resp.HTML, "Experienced") {
		t.Errorf("html = %q", resp.HTML)
	}
}

func TestHandleHighlightBadBody(t *testing.T) {
	handler := newTestServer(&fakeAI{}).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/highlight", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleReview(t *testing.T) {
	ai := &fakeAI{review: &types.Review{ATSScore: 72, Review: "Decent."}}
	handler := newTestServer(ai).Handler()

	payload := `{"tailored_resume": "text", "job_title": "Engineer", "job_description": "desc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/review", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var review types.Review
	if err := json.Unmarshal(rec.Body.Bytes(), &review); err != nil {
		t.Fatal(err)
	}
	if review.ATSScore != 72 {
		t.Errorf("ats_score = %d, want 72", review.ATSScore)
	}
}

func TestHandleDownload(t *testing.T) {
	handler := newTestServer(&fakeAI{}).Handler()

	payload := `{"content": "tailored resume body"}`
	req := httptest.NewRequest(http.MethodPost, "/api/download", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatal(rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "tailored_resume.txt") {
		t.Errorf("Content-Disposition = %q", got)
	}
	if rec.Body.String() != "tailored resume body" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestServer(&fakeAI{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/highlight", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
