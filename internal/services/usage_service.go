package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"railbook/internal/domain/models"
	"railbook/internal/repositories"
	"railbook/internal/utils"
)

// UsageService computes rolling usage statistics. The entity list and the
// payment records are independent reads with no ordering dependency, so the
// two fetches run concurrently and join in memory afterwards.
type UsageService struct {
	Accounts  repositories.AccountRepository
	Handlers  repositories.HandlerRepository
	Records   repositories.BookingRecordRepository
	RequestID string

	// Trailing window length for accounts and fixed epoch for handlers.
	WindowDays   int
	HandlerSince time.Time

	Now           func() time.Time
	FetchAccounts func(context.Context) ([]models.Account, error)
	FetchHandlers func(context.Context) ([]models.Handler, error)
	FetchRecords  func(context.Context) ([]models.BookingRecord, error)
}

func (s UsageService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s UsageService) windowDays() int {
	if s.WindowDays > 0 {
		return s.WindowDays
	}
	return 30
}

func (s UsageService) fetchRecords(ctx context.Context) ([]models.BookingRecord, error) {
	if s.FetchRecords != nil {
		return s.FetchRecords(ctx)
	}
	return s.Records.List(ctx)
}

// AccountStats reports per-username counts over the trailing window.
func (s UsageService) AccountStats(ctx context.Context) (map[string]UsageStat, error) {
	var (
		wg       sync.WaitGroup
		accounts []models.Account
		records  []models.BookingRecord
		accErr   error
		recErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		if s.FetchAccounts != nil {
			accounts, accErr = s.FetchAccounts(ctx)
			return
		}
		accounts, accErr = s.Accounts.List(ctx)
	}()
	go func() {
		defer wg.Done()
		records, recErr = s.fetchRecords(ctx)
	}()
	wg.Wait()

	if accErr != nil {
		return nil, accErr
	}
	if recErr != nil {
		return nil, recErr
	}

	window := TrailingWindow(s.now(), s.windowDays())
	utils.LogEvent(s.RequestID, "usage", "account_stats",
		fmt.Sprintf("accounts=%d records=%d window_days=%d", len(accounts), len(records), s.windowDays()))
	return AccountUsage(accounts, records, window), nil
}

// HandlerStats reports per-operator counts since the configured epoch.
func (s UsageService) HandlerStats(ctx context.Context) (map[string]UsageStat, error) {
	var (
		wg       sync.WaitGroup
		handlers []models.Handler
		records  []models.BookingRecord
		hErr     error
		recErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		if s.FetchHandlers != nil {
			handlers, hErr = s.FetchHandlers(ctx)
			return
		}
		handlers, hErr = s.Handlers.List(ctx)
	}()
	go func() {
		defer wg.Done()
		records, recErr = s.fetchRecords(ctx)
	}()
	wg.Wait()

	if hErr != nil {
		return nil, hErr
	}
	if recErr != nil {
		return nil, recErr
	}

	utils.LogEvent(s.RequestID, "usage", "handler_stats",
		fmt.Sprintf("handlers=%d records=%d since=%s", len(handlers), len(records), utils.FormatDate(s.HandlerSince)))
	return HandlerUsage(handlers, records, SinceWindow(s.HandlerSince)), nil
}
