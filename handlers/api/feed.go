package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"mailsim/config"
	"mailsim/feed"
	"mailsim/utils"
)

// FeedHandler exposes the derivation layer to clients: month enumeration,
// raw month data, and the paginated, sectioned inbox view.
type FeedHandler struct {
	config *config.Config
	loader *feed.Loader
	inbox  *feed.Inbox
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(cfg *config.Config, loader *feed.Loader) *FeedHandler {
	return &FeedHandler{
		config: cfg,
		loader: loader,
		inbox:  feed.NewInbox(loader),
	}
}

// Months lists the available months, most recent first.
func (h *FeedHandler) Months(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"months": h.loader.Months(),
	})
}

// Latest returns the most recent month's raw messages.
func (h *FeedHandler) Latest(c *fiber.Ctx) error {
	ref, msgs, ok := h.loader.LatestMonth()
	if !ok {
		return utils.NotFoundError("no months available", nil)
	}
	return c.JSON(fiber.Map{
		"year":     ref.Year,
		"monthKey": ref.MonthKey,
		"messages": msgs,
	})
}

// Month returns one month's raw messages as persisted. A month with no
// backing data yields an empty list, not an error.
func (h *FeedHandler) Month(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return utils.BadRequestError("invalid year", err)
	}
	monthKey := c.Params("month")
	if monthKey == "" {
		return utils.BadRequestError("month key is required", nil)
	}
	return c.JSON(fiber.Map{
		"year":     year,
		"monthKey": monthKey,
		"messages": h.loader.MonthMessages(year, monthKey),
	})
}

// Inbox returns the sectioned thread view over everything loaded so far.
// Passing ?more=1 (or hitting an empty inbox) loads the next page first.
func (h *FeedHandler) Inbox(c *fiber.Ctx) error {
	more := c.QueryBool("more")
	hasMore := h.loader.HasMore()
	if more || h.inbox.Loaded() == 0 {
		_, hasMore = h.inbox.LoadMore()
	}

	localizer, _ := c.Locals("localizer").(*i18n.Localizer)
	sections := h.inbox.Sections(localizer)
	if sections == nil {
		sections = []feed.Section{}
	}

	return c.JSON(fiber.Map{
		"sections": sections,
		"loaded":   h.inbox.Loaded(),
		"hasMore":  hasMore,
	})
}
