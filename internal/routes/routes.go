package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/toruktube/revive-app-sub001/internal/handlers"
	"github.com/toruktube/revive-app-sub001/internal/repository"
	"github.com/toruktube/revive-app-sub001/internal/services"
	chatws "github.com/toruktube/revive-app-sub001/internal/websocket"
)

func RegisterRoutes(app *fiber.App, store *repository.Store, opts ...services.Option) {
	agendaService := services.NewAgendaService(store, opts...)
	paymentService := services.NewPaymentService(store, opts...)
	journalService := services.NewJournalService(store, opts...)
	messagingService := services.NewMessagingService(store, opts...)
	routineService := services.NewRoutineService(store, opts...)
	rosterService := services.NewRosterService(store)

	chatHub := chatws.NewHub()
	go chatHub.Run()
	messagingService.Subscribe(chatHub)

	agendaHandler := handlers.NewAgendaHandler(agendaService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	journalHandler := handlers.NewJournalHandler(journalService)
	conversationHandler := handlers.NewConversationHandler(messagingService, chatHub)
	routineHandler := handlers.NewRoutineHandler(routineService)
	clientHandler := handlers.NewClientHandler(rosterService)

	api := app.Group("/api/v1")

	agenda := api.Group("/agenda")
	agenda.Get("", agendaHandler.GetAgenda)
	agenda.Put("/week", agendaHandler.ChangeWeek)
	agenda.Put("/filter", agendaHandler.SetFilter)
	agenda.Post("/sessions", agendaHandler.ScheduleSession)
	agenda.Put("/sessions/:id/status", agendaHandler.UpdateSessionStatus)

	payments := api.Group("/payments")
	payments.Get("", paymentHandler.GetPayments)
	payments.Put("/filter", paymentHandler.SetFilter)
	payments.Post("", paymentHandler.RegisterPayment)

	journal := api.Group("/journal")
	journal.Get("", journalHandler.GetJournal)
	journal.Put("/filter", journalHandler.SetFilter)
	journal.Post("/notes", journalHandler.AddNote)

	conversations := api.Group("/conversations")
	conversations.Get("", conversationHandler.ListConversations)
	conversations.Put("/filter", conversationHandler.SetQuery)
	conversations.Put("/active", conversationHandler.SelectConversation)
	conversations.Delete("/active", conversationHandler.CloseConversation)
	conversations.Post("/:id/messages", conversationHandler.SendMessage)
	conversations.Post("/:id/read", conversationHandler.MarkRead)

	routines := api.Group("/routines")
	routines.Get("", routineHandler.GetRoutines)
	routines.Put("/filter", routineHandler.SetFilter)
	routines.Post("", routineHandler.AddRoutine)

	clients := api.Group("/clients")
	clients.Get("", clientHandler.ListClients)
	clients.Put("/filter", clientHandler.SetFilter)

	api.Use("/ws", conversationHandler.WebSocketUpgrade)
	api.Get("/ws", websocket.New(conversationHandler.HandleWebSocket))
}
