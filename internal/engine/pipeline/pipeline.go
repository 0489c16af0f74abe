// Package pipeline generates the Elm routing and translation modules of a Symfony project.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports"
	"go.trai.ch/esb/internal/engine/changecache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs the routing and translation tasks against one worker.
type Pipeline struct {
	console ports.Console
	worker  ports.Transpiler
	files   ports.FileSync
	cache   *changecache.Cache
	tracer  ports.Tracer
	logger  ports.Logger
}

// New creates a Pipeline. The cache outlives a single run so unchanged
// sources are not sent to the worker again.
func New(
	console ports.Console,
	worker ports.Transpiler,
	files ports.FileSync,
	cache *changecache.Cache,
	tracer ports.Tracer,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		console: console,
		worker:  worker,
		files:   files,
		cache:   cache,
		tracer:  tracer,
		logger:  logger,
	}
}

// Generate runs the routing and translation tasks concurrently.
//
// A failing task does not stop its sibling. The report is always returned;
// the error joins the failures of both tasks.
func (p *Pipeline) Generate(ctx context.Context, opts domain.Options) (*Report, error) {
	ctx, span := p.tracer.Start(ctx, "generate", ports.WithAttribute("project", opts.ProjectRoot))
	defer span.End()

	report := &Report{}
	var routingErr, translationsErr error

	var g errgroup.Group
	g.Go(func() error {
		report.Routing, routingErr = p.routing(ctx, opts)
		return nil
	})
	g.Go(func() error {
		report.TranslationsOutcome, report.Translations, translationsErr = p.translations(ctx, opts)
		return nil
	})
	_ = g.Wait()

	report.sortTranslations()

	if err := errors.Join(routingErr, translationsErr); err != nil {
		span.RecordError(err)
		return report, err
	}
	return report, nil
}

func (p *Pipeline) routing(ctx context.Context, opts domain.Options) (Result, error) {
	result := Result{Kind: domain.KindRouting, Source: domain.RoutingCacheKey}
	if !opts.EnableRouting {
		result.Outcome = domain.OutcomeSkipped
		return result, nil
	}

	ctx, span := p.tracer.Start(ctx, "routing")
	defer span.End()

	fail := func(err error) (Result, error) {
		err = zerr.Wrap(err, domain.ErrRoutingFailed.Error())
		span.RecordError(err)
		result.Outcome = domain.OutcomeFailed
		result.Err = err
		return result, err
	}

	content, err := p.console.QueryRouting(ctx, opts)
	if err != nil {
		return fail(err)
	}

	result.Outcome = domain.OutcomeCached
	_, err = p.cache.WhenChanged(ctx, domain.RoutingCacheKey, content, func(ctx context.Context) error {
		resp, err := p.call(ctx, domain.NewRoutingRequest(domain.RoutingRequest{
			URLPrefix:    opts.EffectiveURLPrefix(),
			Content:      content,
			Version:      opts.ElmVersion,
			EnvVariables: opts.EnvValues(),
		}))
		if err != nil {
			return err
		}

		result.Output = opts.ElmPath(domain.RoutingFileName)
		result.Outcome, err = p.write(result.Output, resp.Content)
		return err
	})
	if err != nil {
		return fail(err)
	}

	if result.Outcome == domain.OutcomeCached {
		p.logger.Debug("routing unchanged, skipping generation")
	}
	span.SetAttribute("outcome", string(result.Outcome))

	return result, nil
}

func (p *Pipeline) translations(ctx context.Context, opts domain.Options) (domain.Outcome, []Result, error) {
	if !opts.EnableTranslations {
		return domain.OutcomeSkipped, nil, nil
	}

	ctx, span := p.tracer.Start(ctx, "translations", ports.WithAttribute("lang", opts.Lang))
	defer span.End()

	fail := func(err error) (domain.Outcome, []Result, error) {
		err = zerr.Wrap(err, domain.ErrTranslationsFailed.Error())
		span.RecordError(err)
		return domain.OutcomeFailed, nil, err
	}

	if err := p.console.DumpTranslations(ctx, opts); err != nil {
		return fail(err)
	}

	pattern := filepath.Join(opts.Path(opts.OutputFolder), domain.TranslationsDirName, "*", opts.Lang+".json")
	catalogs, err := p.files.Glob(pattern)
	if err != nil {
		return fail(err)
	}
	span.SetAttribute("files", len(catalogs))

	results := make([]Result, len(catalogs))
	var g errgroup.Group
	for i, catalog := range catalogs {
		g.Go(func() error {
			results[i] = p.translation(ctx, opts, catalog)
			return nil
		})
	}
	_ = g.Wait()

	var failed []string
	var errs []error
	for _, result := range results {
		if result.Err != nil {
			failed = append(failed, result.Source)
			errs = append(errs, result.Err)
		}
	}
	if len(errs) > 0 {
		err := zerr.Wrap(errors.Join(errs...), fmt.Sprintf("%d of %d translation files failed", len(errs), len(results)))
		err = zerr.With(zerr.Wrap(err, domain.ErrTranslationsFailed.Error()), "files", failed)
		span.RecordError(err)
		return domain.OutcomeFailed, results, err
	}

	return domain.OutcomeWritten, results, nil
}

// translation generates the module of one catalog. Failures are reported in
// the result and never affect other catalogs.
func (p *Pipeline) translation(ctx context.Context, opts domain.Options, catalog string) Result {
	result := Result{Kind: domain.KindTranslation, Source: catalog}

	ctx, span := p.tracer.Start(ctx, "translation", ports.WithAttribute("file", filepath.Base(catalog)))
	defer span.End()

	fail := func(err error) Result {
		err = zerr.With(err, "file", catalog)
		span.RecordError(err)
		result.Outcome = domain.OutcomeFailed
		result.Err = err
		return result
	}

	content, err := p.files.ReadFile(catalog)
	if err != nil {
		return fail(err)
	}

	result.Outcome = domain.OutcomeCached
	_, err = p.cache.WhenChanged(ctx, domain.TranslationCacheKey(catalog), content, func(ctx context.Context) error {
		resp, err := p.call(ctx, domain.NewTranslationRequest(domain.TranslationRequest{
			Name:         catalogName(opts, catalog),
			Content:      content,
			Version:      opts.ElmVersion,
			EnvVariables: opts.EnvValues(),
		}))
		if err != nil {
			return err
		}
		if resp.File == nil {
			return zerr.With(zerr.Wrap(domain.ErrWorkerFailed, "response carries no file"), "kind", string(domain.KindTranslation))
		}

		result.Output = opts.ElmPath(resp.File.Name)
		result.Outcome, err = p.write(result.Output, resp.File.Content)
		return err
	})
	if err != nil {
		return fail(err)
	}

	span.SetAttribute("outcome", string(result.Outcome))
	return result
}

// call sends req and turns a failure reported by the worker into an error.
func (p *Pipeline) call(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResponse, error) {
	resp, err := p.worker.Call(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.Succeeded {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkerFailed, resp.Error), "kind", string(req.Kind))
	}
	return resp, nil
}

func (p *Pipeline) write(path, content string) (domain.Outcome, error) {
	written, err := p.files.WriteIfChanged(path, content)
	if err != nil {
		return domain.OutcomeFailed, err
	}
	if written {
		p.logger.Debug("wrote " + path)
		return domain.OutcomeWritten, nil
	}
	return domain.OutcomeUnchanged, nil
}

// catalogName is the catalog path as the worker expects it, relative to the project root.
func catalogName(opts domain.Options, catalog string) string {
	if rel, err := filepath.Rel(opts.ProjectRoot, catalog); err == nil {
		return filepath.ToSlash(rel)
	}
	return catalog
}
