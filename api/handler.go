package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
	ScheduleByName(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx)
	}

	processes := request.Processes()
	opts := s.options(request)
	outcomes, err := schedulers.ScheduleAll(processes, opts)
	if err != nil {
		return s.scheduleFailed(ctx, err)
	}

	runId := uuid.NewString()
	results := make([]responses.ScheduleResponse, len(outcomes))
	for i, outcome := range outcomes {
		results[i] = schedulers.GenerateResponse(processes, outcome, opts)
		results[i].RunId = runId
	}
	s.logger.Info("scheduled", "run_id", runId, "algorithm", "all", "processes", len(processes))
	return ctx.JSON(responses.AllResponse{RunId: runId, Results: results})
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	algorithms := schedulers.Algorithms()
	list := make([]fiber.Map, len(algorithms))
	for i, alg := range algorithms {
		list[i] = fiber.Map{
			"algorithm":  alg.String(),
			"title":      alg.Title(),
			"preemptive": alg.Preemptive(),
		}
	}
	return ctx.JSON(fiber.Map{"algorithms": list})
}

// ScheduleByName resolves the :algorithm path parameter, accepting aliases
// such as priority-preemptive or round-robin.
func (s *SchedulerHandlerImpl) ScheduleByName(ctx *fiber.Ctx) error {
	alg, err := schedulers.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return s.scheduleFailed(ctx, err)
	}
	return s.schedule(ctx, alg)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx)
	}

	processes := request.Processes()
	opts := s.options(request)
	outcome, err := schedulers.Schedule(alg, processes, opts)
	if err != nil {
		return s.scheduleFailed(ctx, err)
	}

	response := schedulers.GenerateResponse(processes, outcome, opts)
	response.RunId = uuid.NewString()
	s.logger.Info("scheduled", "run_id", response.RunId, "algorithm", alg.String(), "processes", len(processes))
	return ctx.JSON(response)
}

// options falls back to the configured quantum when the request has none.
func (s *SchedulerHandlerImpl) options(request requests.ScheduleRequests) schedulers.Options {
	quantum := request.TimeQuantum
	if quantum <= 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	return schedulers.Options{TimeQuantum: quantum, Logger: s.logger}
}

func badRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
}

func (s *SchedulerHandlerImpl) scheduleFailed(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusUnprocessableEntity
	if errors.Is(err, schedulers.ErrUnknownAlgorithm) {
		status = fiber.StatusNotFound
	}
	s.logger.Warn("can not process request", "error", err)
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}
