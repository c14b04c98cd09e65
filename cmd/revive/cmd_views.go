package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toruktube/revive-app-sub001/internal/calendar"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/repository"
	"github.com/toruktube/revive-app-sub001/internal/services"
)

func newAgendaCmd() *cobra.Command {
	var week, status, client string

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Print the weekly agenda",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(store *repository.Store) (any, error) {
				service := services.NewAgendaService(store)
				if week != "" {
					date, err := calendar.ParseDay(week)
					if err != nil {
						return nil, fmt.Errorf("invalid --week: %w", err)
					}
					service.SetWeek(date)
				}

				var f services.AgendaFilter
				if client != "" {
					f.ClientID = &client
				}
				if status != "" {
					s := models.SessionStatus(strings.ToLower(status))
					f.Status = &s
				}
				return service.SetFilter(f), nil
			})
		},
	}
	cmd.Flags().StringVar(&week, "week", "", "any day of the week to show (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "only sessions with this status")
	cmd.Flags().StringVar(&client, "client", "", "only sessions for this client id")
	return cmd
}

func newPaymentsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Print the payment ledger and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(store *repository.Store) (any, error) {
				service := services.NewPaymentService(store)
				var f services.PaymentFilter
				if status != "" {
					s := models.PaymentStatus(strings.ToLower(status))
					f.Status = &s
				}
				return service.SetFilter(f), nil
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only payments with this status")
	return cmd
}

func newJournalCmd() *cobra.Command {
	var client string
	var minEnergy float64

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print journal notes and averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(store *repository.Store) (any, error) {
				service := services.NewJournalService(store)
				var f services.JournalFilter
				if client != "" {
					f.ClientID = &client
				}
				if cmd.Flags().Changed("min-energy") {
					f.MinEnergy = &minEnergy
				}
				return service.SetFilter(f), nil
			})
		},
	}
	cmd.Flags().StringVar(&client, "client", "", "only notes for this client id")
	cmd.Flags().Float64Var(&minEnergy, "min-energy", 0, "minimum energy level (1-5)")
	return cmd
}

func newConversationsCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "Print conversations and the unread total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(store *repository.Store) (any, error) {
				return services.NewMessagingService(store).SetQuery(query), nil
			})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "search client names and last messages")
	return cmd
}
