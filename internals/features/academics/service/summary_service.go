// file: internals/features/academics/service/summary_service.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/bytedance/sonic"
	lru "github.com/hashicorp/golang-lru/v2"

	"jntuh_insights_backend/internals/features/academics/engine"
)

/* ===================== SHAPES ===================== */

type SemesterSummary struct {
	ID      string             `json:"id"`
	Year    int                `json:"year"`
	Term    int                `json:"term"`
	Label   string             `json:"label"`
	Mode    engine.Mode        `json:"mode"`
	SGPA    float64            `json:"sgpa"`
	Credits float64            `json:"credits"`
	Empty   bool               `json:"empty"`
	Detail  *engine.SGPAResult `json:"detail,omitempty"`
}

// Summary is everything the dashboard renders for one record.
type Summary struct {
	Regulation  engine.Regulation `json:"regulation"`
	StudentName string            `json:"student_name,omitempty"`
	HallTicket  string            `json:"hall_ticket,omitempty"`

	Display     engine.DisplayResult   `json:"display"`
	Computed    engine.CGPAResult      `json:"computed"`
	Category    string                 `json:"category"`
	Semesters   []SemesterSummary      `json:"semesters"`
	Credits     engine.CreditStats     `json:"credits"`
	Progress    engine.CreditProgress  `json:"progress"`
	GradeCounts map[engine.Grade]int   `json:"grade_distribution"`
	Yearly      []engine.YearlyAverage `json:"yearly_averages"`
	Backlogs    []engine.Backlog       `json:"backlogs"`
	Trend       engine.TrendReport     `json:"trend"`
	Prediction  *engine.Prediction     `json:"prediction,omitempty"`
	Consistency engine.Consistency     `json:"consistency"`
}

// BuildSummary runs every engine calculation over the record.
func BuildSummary(rec engine.AcademicRecord) Summary {
	display := engine.DisplayCGPA(rec)

	sems := make([]SemesterSummary, 0, len(rec.Semesters))
	for _, sem := range rec.Semesters {
		ss := SemesterSummary{
			ID:      sem.ID,
			Year:    sem.Year,
			Term:    sem.Term,
			Label:   engine.SemesterLabel(sem.Year, sem.Term),
			Mode:    sem.Mode,
			SGPA:    engine.ResolveSemesterSGPA(sem),
			Credits: engine.SemesterCredits(sem),
			Empty:   engine.IsEmptySemester(sem),
		}
		if sem.Mode == engine.ModeDetailed && !ss.Empty {
			r := engine.ComputeSGPA(sem.Subjects)
			ss.Detail = &r
		}
		sems = append(sems, ss)
	}

	out := Summary{
		Regulation:  rec.Regulation,
		StudentName: rec.StudentName,
		HallTicket:  rec.HallTicket,
		Display:     display,
		Computed:    display.CGPAResult,
		Category:    engine.PerformanceCategory(display.CGPA),
		Semesters:   sems,
		Credits:     engine.CreditStatsOf(rec.Semesters),
		Progress:    engine.ProgressTowardDegree(rec),
		GradeCounts: engine.GradeDistribution(rec.Semesters),
		Yearly:      engine.YearlyAverages(rec.Semesters),
		Backlogs:    engine.Backlogs(rec.Semesters),
		Trend:       engine.AnalyzeSemesters(rec.Semesters),
		Consistency: engine.AnalyzeConsistency(rec.Semesters),
	}
	if display.Official {
		out.Computed = engine.ComputeCGPA(rec.Semesters)
	}
	if p, ok := engine.PredictNextSGPA(engine.SGPASequence(rec.Semesters)); ok {
		out.Prediction = &p
	}
	return out
}

/* ===================== CACHED SERVICE ===================== */

const DefaultCacheSize = 512

// SummaryService memoises BuildSummary by record fingerprint.
// Cached summaries are shared; callers must treat them as read-only.
type SummaryService struct {
	cache  *lru.Cache[string, Summary]
	hits   atomic.Int64
	misses atomic.Int64
}

func NewSummaryService(size int) (*SummaryService, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, Summary](size)
	if err != nil {
		return nil, fmt.Errorf("init summary cache: %w", err)
	}
	log.Printf("[INFO] summary cache siap (size=%d)", size)
	return &SummaryService{cache: c}, nil
}

func (s *SummaryService) Summarize(rec engine.AcademicRecord) (Summary, error) {
	key, err := Fingerprint(rec)
	if err != nil {
		return Summary{}, err
	}
	if cached, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		return cached, nil
	}
	s.misses.Add(1)

	out := BuildSummary(rec)
	s.cache.Add(key, out)
	return out, nil
}

type CacheStats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

func (s *SummaryService) Stats() CacheStats {
	return CacheStats{
		Entries: s.cache.Len(),
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
	}
}

// Fingerprint is the hex sha256 of the record's JSON form.
func Fingerprint(rec engine.AcademicRecord) (string, error) {
	raw, err := sonic.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("fingerprint record: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
