package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the v1 scheduling endpoints under router.
func RegisterRoutes(router fiber.Router, handler SchedulerHandler) {
	v1 := router.Group("/v1")
	{
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/priority-np", handler.PriorityNonPreemptive)
		v1.Post("/priority-p", handler.PriorityPreemptive)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/:algorithm", handler.ScheduleByName)
	}
}
