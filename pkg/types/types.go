package types

import "github.com/saikat0506/Rezume-AI/internal/highlight"

// =============== tailoring TYPES ===============

// TailorInput carries everything the tailoring pipeline needs: the resume
// text (already extracted from the uploaded file), the target job, and the
// style guidance sentence resolved from the style registry.
type TailorInput struct {
	ResumeText     string `json:"resume_text"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	StyleGuidance  string `json:"style_guidance"`
	Keywords       string `json:"keywords,omitempty"`
}

type TailorResult struct {
	Keywords       string              `json:"keywords,omitempty"`
	TailoredResume string              `json:"tailored_resume"`
	Segments       []highlight.Segment `json:"segments"`
	DiffHTML       string              `json:"diff_html"`
	Review         *Review             `json:"review,omitempty"`
}

// =============== review TYPES ===============

// Review is the structured output of the review call: an ATS compatibility
// score out of 100 plus a recruiter-style write-up.
type Review struct {
	ATSScore int    `json:"ats_score"`
	Review   string `json:"review"`
}

// =============== request TYPES ===============

type HighlightRequest struct {
	Original string `json:"original"`
	Revised  string `json:"revised"`
}

type HighlightResponse struct {
	Segments []highlight.Segment `json:"segments"`
	HTML     string              `json:"html"`
}

type ReviewRequest struct {
	TailoredResume string `json:"tailored_resume"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

type DownloadRequest struct {
	Content  string `json:"content"`
	Filename string `json:"filename,omitempty"`
}
