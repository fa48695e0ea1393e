package parser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"slugline/internal/analysis"
	"slugline/internal/breakdown"
	"slugline/internal/config"
	"slugline/internal/continuity"
	"slugline/internal/knowledge"
	"slugline/internal/logging"
	"slugline/internal/patterns"
	"slugline/internal/scenes"
	"slugline/internal/textutil"
)

// SynopsisUnavailable is the synopsis of record when even the excerpt
// fallback produced nothing.
const SynopsisUnavailable = "synopsis unavailable"

// SceneParseError marks a scene-local failure. The batch logs it, skips
// the scene, and continues.
type SceneParseError struct {
	SceneNumber int
	Err         error
}

func (e *SceneParseError) Error() string {
	return fmt.Sprintf("scene %d: %v", e.SceneNumber, e.Err)
}

func (e *SceneParseError) Unwrap() error { return e.Err }

// Summary counts the outcome of one run.
type Summary struct {
	Scenes   int           `json:"scenes"`
	Parsed   int           `json:"parsed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

// Result is one full run over a screenplay document.
type Result struct {
	Breakdowns []breakdown.Breakdown `json:"breakdowns"`
	Summary    Summary               `json:"summary"`
}

// Parser turns screenplay text into per-scene breakdown records. A single
// parser serves any number of runs; continuity state is created per run.
type Parser struct {
	cfg    config.Analysis
	logger *slog.Logger

	lib      *patterns.Library
	kb       *knowledge.Base
	splitter *scenes.Splitter
	headers  *scenes.HeaderParser

	cast      *analysis.CastAnalyzer
	props     *analysis.PropAnalyzer
	wardrobe  *analysis.WardrobeAnalyzer
	effects   *analysis.EffectsAnalyzer
	legal     *analysis.LegalAnalyzer
	cinematic *analysis.CinematicAnalyzer
	synopsis  *analysis.SynopsisAnalyzer
}

// New builds a parser over fresh pattern and knowledge tables.
func New(cfg config.Analysis, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNop()
	}
	lib := patterns.New()
	kb := knowledge.NewBase()
	return &Parser{
		cfg:       cfg,
		logger:    logging.NewComponentLogger(logger, "parser"),
		lib:       lib,
		kb:        kb,
		splitter:  scenes.NewSplitter(lib),
		headers:   scenes.NewHeaderParser(lib),
		cast:      analysis.NewCastAnalyzer(lib, kb),
		props:     analysis.NewPropAnalyzer(lib, kb),
		wardrobe:  analysis.NewWardrobeAnalyzer(lib, kb),
		effects:   analysis.NewEffectsAnalyzer(lib),
		legal:     analysis.NewLegalAnalyzer(lib, kb),
		cinematic: analysis.NewCinematicAnalyzer(lib),
		synopsis:  analysis.NewSynopsisAnalyzer(lib),
	}
}

// Analyze runs the pipeline over a whole document. Scene-local failures
// are skipped and counted; ErrNoScenes and context cancellation abort the
// run. Scenes come back in ascending scene-number order.
func (p *Parser) Analyze(ctx context.Context, text string, component breakdown.Component) (*Result, error) {
	start := time.Now()
	if component == "" {
		component = breakdown.ComponentFull
	}

	blocks, err := p.splitter.Split(text)
	if err != nil {
		return nil, err
	}

	graph := continuity.NewGraph()
	result := &Result{Summary: Summary{Scenes: len(blocks)}}
	for _, block := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := p.processScene(block, component, graph)
		if err != nil {
			result.Summary.Failed++
			p.logger.Warn("scene skipped",
				logging.Int(logging.FieldScene, block.Number),
				logging.Error(err))
			continue
		}
		result.Breakdowns = append(result.Breakdowns, record)
		result.Summary.Parsed++
	}
	result.Summary.Duration = time.Since(start)

	p.logger.Info("analysis complete",
		logging.String("analysis_component", string(component)),
		logging.Int("scenes", result.Summary.Scenes),
		logging.Int("parsed", result.Summary.Parsed),
		logging.Int("failed", result.Summary.Failed),
		logging.Duration("duration", result.Summary.Duration))
	return result, nil
}

// processScene runs the extract, enrich, and refine passes for one block.
// A panic inside an analyzer is contained as a SceneParseError.
func (p *Parser) processScene(block scenes.Block, component breakdown.Component, graph *continuity.Graph) (record breakdown.Breakdown, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &SceneParseError{SceneNumber: block.Number, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	header := p.headers.Parse(block)
	doc := patterns.NewDocument(block.Text)
	scene := &analysis.Scene{
		Block:    block,
		Header:   header,
		Type:     analysis.ClassifyScene(p.lib, doc, block),
		Doc:      doc,
		Profiles: make(map[string]knowledge.CharacterProfile),
	}

	record = breakdown.Breakdown{
		SceneNumber: block.Number,
		Placement:   header.Placement,
		TimeOfDay:   header.TimeOfDay,
		Location:    header.Location,
		SceneType:   scene.Type,
	}

	for _, analyzer := range p.plan(component) {
		partial, aerr := analyzer.Analyze(scene)
		if aerr != nil {
			p.logger.Warn("analyzer failed, partial record continues",
				logging.Int(logging.FieldScene, block.Number),
				logging.String(logging.FieldAnalyzer, analyzer.Name()),
				logging.Error(aerr))
			continue
		}
		if analyzer.Name() == p.cast.Name() {
			scene.Cast = append(scene.Cast, partial.Cast...)
			for name, profile := range partial.Profiles {
				scene.Profiles[name] = profile
			}
		}
		partial.MergeInto(&record)
	}

	p.refine(&record, scene, component, graph)
	return record, nil
}

// plan lists the analyzers a component scope runs, in execution order.
// Cast always precedes the analyzers that read scene.Cast. The wardrobe
// and legal toggles shape the full analysis only; an explicit scope always
// runs what it names.
func (p *Parser) plan(component breakdown.Component) []analysis.Analyzer {
	switch component {
	case breakdown.ComponentCast:
		return []analysis.Analyzer{p.cast}
	case breakdown.ComponentProps:
		return []analysis.Analyzer{p.props}
	case breakdown.ComponentWardrobe:
		return []analysis.Analyzer{p.cast, p.wardrobe}
	case breakdown.ComponentLegal:
		return []analysis.Analyzer{p.legal}
	case breakdown.ComponentSynopsis:
		return []analysis.Analyzer{p.cast, p.synopsis}
	case breakdown.ComponentContinuity:
		return []analysis.Analyzer{p.cast, p.props}
	}

	list := []analysis.Analyzer{p.cast, p.props}
	if p.cfg.EnableWardrobeInference {
		list = append(list, p.wardrobe)
	}
	list = append(list, p.effects)
	if p.cfg.EnableLegalAlerts {
		list = append(list, p.legal)
	}
	return append(list, p.cinematic, p.synopsis)
}

// refine is the third pass: continuity, production totals, the synopsis
// fallback of last resort, and the completeness score.
func (p *Parser) refine(record *breakdown.Breakdown, scene *analysis.Scene, component breakdown.Component, graph *continuity.Graph) {
	full := component == breakdown.ComponentFull

	if full || component == breakdown.ComponentContinuity {
		graph.Annotate(record)
		graph.RegisterScene(record)
	}

	if full {
		record.Extras = p.extras(scene)
		record.Makeup = p.makeup(record, scene)
	}

	if (full || component == breakdown.ComponentSynopsis) && record.Synopsis == "" {
		record.Synopsis = SynopsisUnavailable
	}

	record.Confidence = confidence(record)
	if full && record.Confidence < p.cfg.ConfidenceThreshold {
		p.logger.Warn("low confidence scene",
			logging.Int(logging.FieldScene, record.SceneNumber),
			logging.Float64("confidence", record.Confidence))
	}
}

func (p *Parser) extras(scene *analysis.Scene) string {
	if scene.Doc.HasAny(p.lib.CrowdCues...) {
		return "background crowd (10-20 extras)"
	}
	return ""
}

func (p *Parser) makeup(record *breakdown.Breakdown, scene *analysis.Scene) []string {
	var notes []string
	for _, name := range record.Cast {
		notes = append(notes, fmt.Sprintf("base camera makeup: %s", name))
		profile, ok := scene.Profiles[name]
		if !ok {
			continue
		}
		if strings.Contains(textutil.Normalize(profile.PsychologicalState), "paralyzed") {
			notes = append(notes, fmt.Sprintf("sickly pallor: %s", name))
		}
	}
	if record.SceneType == breakdown.SceneEmotional {
		notes = append(notes, "tear and sweat retouch kit")
	}
	return notes
}

// confidence scores how much of the record the text actually supported.
// Purely a function of the record, so identical input always scores the
// same.
func confidence(record *breakdown.Breakdown) float64 {
	score := 0.0
	if len(record.Cast) > 0 {
		score += 0.3
	}
	if len(record.Props)+len(record.SetDressing)+len(record.Vehicles) > 0 {
		score += 0.3
	}
	if record.Location != breakdown.LocationUnspecified {
		score += 0.2
	}
	if record.Synopsis != "" && record.Synopsis != SynopsisUnavailable {
		score += 0.2
	}
	return score
}
