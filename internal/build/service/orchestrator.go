package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/teylo/teylo-backend/config"
	"github.com/teylo/teylo-backend/internal/build/assets"
	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/build/repository"
	"github.com/teylo/teylo-backend/internal/build/template"
	"github.com/teylo/teylo-backend/internal/build/unity"
	"github.com/teylo/teylo-backend/internal/gamedesign"
	projectdomain "github.com/teylo/teylo-backend/internal/projects/domain"
	projectrepo "github.com/teylo/teylo-backend/internal/projects/repository"
)

// Build-start rate limit: a small burst, then one start per second.
const (
	buildStartBurst = 5
)

// Orchestrator drives the build pipeline: it creates jobs, runs them through
// staging, compilation, and finalization, and mirrors state onto the owning
// project. It is the only writer of job state.
type Orchestrator struct {
	jobs     *repository.JobRepository
	projects *projectrepo.ProjectRepository
	history  *repository.HistoryRepository
	resolver *template.Resolver
	selector *assets.Selector
	runner   *unity.Runner
	limiter  *rate.Limiter
	cfg      config.BuildConfig

	wg sync.WaitGroup
}

// NewOrchestrator creates the build orchestrator. history may be nil when no
// database is configured; archiving is then skipped.
func NewOrchestrator(
	jobs *repository.JobRepository,
	projects *projectrepo.ProjectRepository,
	history *repository.HistoryRepository,
	cfg config.BuildConfig,
) *Orchestrator {
	return &Orchestrator{
		jobs:     jobs,
		projects: projects,
		history:  history,
		resolver: template.NewResolver(cfg.TemplatesDir),
		selector: assets.NewSelector(cfg.AssetsDir),
		runner:   unity.NewRunner(cfg.UnityPath, cfg.SkipUnityBuild, cfg.BuildTimeout),
		limiter:  rate.NewLimiter(rate.Every(time.Second), buildStartBurst),
		cfg:      cfg,
	}
}

// StartBuild creates a queued job for the project and launches it in the
// background. The returned job carries the estimate; callers poll Status for
// progress.
func (o *Orchestrator) StartBuild(ctx context.Context, projectID string) (*domain.BuildJob, error) {
	logger := NewLogger(ctx)

	if !o.limiter.Allow() {
		return nil, domain.ErrBuildRateLimited
	}

	project, err := o.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	// One live build per project. A new build for a project mid-pipeline is
	// rejected rather than queued behind the running one.
	if project.Status == projectdomain.StatusProcessing || project.Status == projectdomain.StatusBuilding {
		return nil, domain.ErrBuildInProgress
	}

	doc := gamedesign.Coerce(project.DesignDocument, project.Category, project.Name, project.OriginalPrompt)

	buildCfg := domain.BuildConfig{
		ProjectID: projectID,
		Category:  project.Category,
		Design:    doc,
		Assets:    o.selector.Select(project.Category, doc),
	}

	job := &domain.BuildJob{
		ProjectID:     projectID,
		Status:        domain.StatusQueued,
		Config:        buildCfg,
		EstimatedTime: EstimateBuildTime(buildCfg),
	}

	if err := o.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	job.BuildDirectory = filepath.Join(o.cfg.BuildsDir, job.ID)
	job.PublicURL = o.cfg.BuildsURL + "/" + job.ID
	if err := o.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	if err := o.writeConfigSnapshot(job); err != nil {
		// The audit copy is informational; losing it does not stop the build.
		logger.LogWarnf("start_build", "could not write config snapshot for job %s: %v", job.ID, err)
	}

	if _, err := o.projects.SetStatus(ctx, projectID, projectdomain.StatusProcessing); err != nil {
		return nil, err
	}

	now := time.Now()
	project, err = o.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.BuildInfo == nil {
		project.BuildInfo = &projectdomain.BuildInfo{}
	}
	project.BuildInfo.BuildID = job.ID
	project.BuildInfo.StartTime = &now
	project.BuildInfo.EndTime = nil
	project.BuildInfo.Logs = append(project.BuildInfo.Logs, fmt.Sprintf("Build %s queued", job.ID))
	if err := o.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	recordBuildStarted()
	logger.LogInfof("start_build", "queued job %s for project %s (estimate %ds)", job.ID, projectID, job.EstimatedTime)

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		// The request context ends with the HTTP response; the build runs on
		// its own context bounded by the engine timeout inside the runner.
		o.RunJob(context.Background(), job.ID)
	}()

	return job, nil
}

// Wait blocks until all in-flight builds finish. Used during shutdown.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// RunJob executes the pipeline for a queued job. Any step failure marks both
// the job and its project as failed with the error recorded; RunJob itself
// never returns an error to its goroutine.
func (o *Orchestrator) RunJob(ctx context.Context, jobID string) {
	logger := NewJobLogger(jobID)
	started := time.Now()

	job, err := o.jobs.FindByID(ctx, jobID)
	if err != nil {
		logger.LogError("run_job", err)
		return
	}
	if job.Status != domain.StatusQueued {
		logger.LogWarnf("run_job", "job is %s, not queued; skipping", job.Status)
		return
	}

	if err := o.runPipeline(ctx, job, logger); err != nil {
		o.failJob(ctx, job, err, logger)
		recordBuildFinished(time.Since(started), true)
		return
	}

	recordBuildFinished(time.Since(started), false)
}

func (o *Orchestrator) runPipeline(ctx context.Context, job *domain.BuildJob, logger *Logger) error {
	now := time.Now()
	job.Status = domain.StatusProcessing
	job.StartedAt = &now
	job.Logs = append(job.Logs, "Build started")
	if err := o.jobs.Update(ctx, job); err != nil {
		return err
	}

	if _, err := o.projects.SetStatus(ctx, job.ProjectID, projectdomain.StatusBuilding); err != nil {
		return err
	}
	o.appendProjectLog(ctx, job.ProjectID, "Build started", logger)

	templateDir, err := o.resolver.Resolve(job.Config.Category)
	if err != nil {
		return err
	}
	o.logStep(ctx, job, fmt.Sprintf("Using template %s", templateLabel(templateDir)), logger)

	projectDir := filepath.Join(job.BuildDirectory, "project")
	outputDir := filepath.Join(job.BuildDirectory, "webgl")
	logPath := filepath.Join(job.BuildDirectory, "unity_build.log")

	if err := stageProject(templateDir, projectDir, job.Config, logger); err != nil {
		return err
	}
	o.logStep(ctx, job, fmt.Sprintf("Staged project with %d assets", len(job.Config.Assets)), logger)

	recordEngineInvocation()
	result := o.runner.Compile(ctx, projectDir, outputDir, logPath)

	switch result.Outcome {
	case unity.OutcomeBuilt:
		o.logStep(ctx, job, "Engine build succeeded", logger)
	case unity.OutcomeUnavailable, unity.OutcomeFailed:
		o.logStep(ctx, job, fmt.Sprintf("Engine unavailable or failed (%s), writing placeholder build", result.Reason), logger)
		game := unity.FallbackGame{
			Name:        job.Config.Design.GameName,
			Description: job.Config.Design.Description,
			Category:    string(job.Config.Category),
		}
		if err := unity.WriteFallbackArtifacts(outputDir, game); err != nil {
			return err
		}
		recordFallbackUsed()
	}

	return o.finalize(ctx, job, logger)
}

// templateLabel names a template for log lines, preferring the manifest name
// over the directory name.
func templateLabel(templateDir string) string {
	if m, err := template.LoadManifest(templateDir); err == nil && m != nil && m.Name != "" {
		return m.Name
	}
	return filepath.Base(templateDir)
}

// finalize marks the job completed and moves the project to preview with the
// playable URL.
func (o *Orchestrator) finalize(ctx context.Context, job *domain.BuildJob, logger *Logger) error {
	now := time.Now()
	job.Status = domain.StatusCompleted
	job.Progress = 100
	job.CompletedAt = &now
	job.BuildURL = job.PublicURL + "/webgl/index.html"
	job.Logs = append(job.Logs, "Build completed")
	if err := o.jobs.Update(ctx, job); err != nil {
		return err
	}

	project, err := o.projects.SetStatus(ctx, job.ProjectID, projectdomain.StatusPreview)
	if err != nil {
		return err
	}
	if project.BuildInfo == nil {
		project.BuildInfo = &projectdomain.BuildInfo{}
	}
	project.BuildInfo.EndTime = &now
	project.BuildInfo.BuildURL = job.BuildURL
	project.BuildInfo.PreviewURL = job.BuildURL
	project.BuildInfo.Logs = append(project.BuildInfo.Logs, "Build completed")
	if err := o.projects.Update(ctx, project); err != nil {
		return err
	}

	o.archive(job, logger)
	logger.LogInfof("finalize", "job completed, build at %s", job.BuildURL)
	return nil
}

// failJob records a pipeline error on both the job and its project. Mirroring
// errors are logged but not propagated; the original failure wins.
func (o *Orchestrator) failJob(ctx context.Context, job *domain.BuildJob, cause error, logger *Logger) {
	logger.LogError("build_pipeline", cause)

	now := time.Now()
	job.Status = domain.StatusFailed
	job.Progress = 0
	job.Error = cause.Error()
	job.CompletedAt = &now
	job.Logs = append(job.Logs, "Build failed: "+cause.Error())
	if err := o.jobs.Update(ctx, job); err != nil {
		logger.LogError("fail_job", err)
	}

	if _, err := o.projects.SetStatus(ctx, job.ProjectID, projectdomain.StatusFailed); err != nil {
		logger.LogError("fail_job", err)
	}
	o.appendProjectLog(ctx, job.ProjectID, "Build failed: "+cause.Error(), logger)

	project, err := o.projects.GetByID(ctx, job.ProjectID)
	if err == nil && project.BuildInfo != nil {
		project.BuildInfo.EndTime = &now
		if err := o.projects.Update(ctx, project); err != nil {
			logger.LogError("fail_job", err)
		}
	}

	o.archive(job, logger)
}

// archive writes the terminal job outcome to the history store. Archiving is
// best effort; the live job record is authoritative.
func (o *Orchestrator) archive(job *domain.BuildJob, logger *Logger) {
	if o.history == nil {
		return
	}

	record := &repository.BuildRecord{
		JobID:         job.ID,
		ProjectID:     job.ProjectID,
		Status:        job.Status,
		EstimatedTime: job.EstimatedTime,
		BuildURL:      job.BuildURL,
		Error:         job.Error,
		Logs:          job.Logs,
		StartedAt:     job.StartedAt,
		CompletedAt:   job.CompletedAt,
	}
	if err := o.history.CreateOrUpdate(record); err != nil {
		logger.LogError("archive_build", err)
	}
}

// Status returns the job with its derived progress filled in.
func (o *Orchestrator) Status(ctx context.Context, jobID string) (*domain.BuildJob, error) {
	job, err := o.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	job.Progress = Progress(job, time.Now())
	return job, nil
}

// Logs returns the accumulated log lines for a job.
func (o *Orchestrator) Logs(ctx context.Context, jobID string) ([]string, error) {
	job, err := o.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return job.Logs, nil
}

// Delete removes a job record and its staging directory. Satisfies the
// cleanup hook used by project deletion.
func (o *Orchestrator) Delete(ctx context.Context, jobID string) error {
	job, err := o.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}

	// Directory cleanup is best effort; the record must go away regardless.
	if job.BuildDirectory != "" {
		if err := os.RemoveAll(job.BuildDirectory); err != nil {
			NewJobLogger(jobID).LogWarnf("delete_build", "failed to remove build directory: %v", err)
		}
	}

	return o.jobs.Delete(ctx, jobID)
}

// History returns the archived builds for a project, newest first.
func (o *Orchestrator) History(ctx context.Context, projectID string) ([]repository.BuildRecord, error) {
	if o.history == nil {
		return nil, nil
	}
	return o.history.ListByProjectID(projectID)
}

// writeConfigSnapshot writes the resolved build config next to the staged
// project as a debugging aid.
func (o *Orchestrator) writeConfigSnapshot(job *domain.BuildJob) error {
	if err := os.MkdirAll(job.BuildDirectory, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(job.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(job.BuildDirectory, "build-config.json"), data, 0o644)
}

// logStep appends a progress line to both the job and its project.
func (o *Orchestrator) logStep(ctx context.Context, job *domain.BuildJob, line string, logger *Logger) {
	job.Logs = append(job.Logs, line)
	if err := o.jobs.Update(ctx, job); err != nil {
		logger.LogError("log_step", err)
	}
	o.appendProjectLog(ctx, job.ProjectID, line, logger)
	logger.LogInfo("build_step", line)
}

func (o *Orchestrator) appendProjectLog(ctx context.Context, projectID, line string, logger *Logger) {
	if err := o.projects.AppendLog(ctx, projectID, line); err != nil {
		logger.LogError("append_project_log", err)
	}
}
