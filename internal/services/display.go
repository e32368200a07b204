package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-currency-display/internal/dom"
	"github.com/sbilibin2017/gw-currency-display/internal/events"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
)

//go:generate mockgen -source=display.go -destination=display_mock.go -package=services

const (
	// PriceAttr tags an element whose content is a base-currency price.
	PriceAttr = "data-price-inr"
	// SelectorID is the id of the currency <select>.
	SelectorID = "currency-select"
	// NoticeID is the id of the detection banner.
	NoticeID = "currency-notification"
)

// RerenderHook regenerates page content that depends on the active currency,
// such as catalog cards.
type RerenderHook func(ctx context.Context, doc *dom.Document, cc *CurrencyContext) error

// ChainHooks runs hooks in order, skipping nils and stopping at the first error.
func ChainHooks(hooks ...RerenderHook) RerenderHook {
	return func(ctx context.Context, doc *dom.Document, cc *CurrencyContext) error {
		for _, h := range hooks {
			if h == nil {
				continue
			}
			if err := h(ctx, doc, cc); err != nil {
				return err
			}
		}
		return nil
	}
}

// PreferenceWriter persists a manual currency choice.
type PreferenceWriter interface {
	Set(ctx context.Context, visitorID string, code models.CurrencyCode) error
}

// DisplaySync applies an active currency to a page.
type DisplaySync struct {
	prefs     PreferenceWriter
	publisher Publisher

	mu   sync.RWMutex
	hook RerenderHook
}

// NewDisplaySync creates a synchronizer. publisher may be nil.
func NewDisplaySync(prefs PreferenceWriter, publisher Publisher) *DisplaySync {
	return &DisplaySync{prefs: prefs, publisher: publisher}
}

// SetRerenderHook registers the hook run after price tags are rewritten.
// nil clears it.
func (d *DisplaySync) SetRerenderHook(h RerenderHook) {
	d.mu.Lock()
	d.hook = h
	d.mu.Unlock()
}

// ApplyCurrency makes code the active currency of cc and rewrites doc to
// match. doc may be nil when only the state change is wanted. An unsupported
// code is rejected before anything changes. The choice is persisted only for
// OriginUser.
func (d *DisplaySync) ApplyCurrency(ctx context.Context, doc *dom.Document, cc *CurrencyContext, code models.CurrencyCode, origin Origin) error {
	if !cc.Rates.Supports(code) {
		logger.Log.Errorw("invalid currency", "currency", code)
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	cc.Active = code
	cc.Origin = origin

	if doc != nil {
		d.rewritePriceTags(doc, cc)
		syncSelector(doc, code)
		if origin == OriginDetected && cc.Detection != nil && cc.Detection.Notice != nil {
			if err := renderNotice(doc, cc.Detection.Notice); err != nil {
				logger.Log.Warnw("could not render detection notice", "error", err)
			}
		}

		d.mu.RLock()
		hook := d.hook
		d.mu.RUnlock()
		if hook != nil {
			if err := hook(ctx, doc, cc); err != nil {
				logger.Log.Errorw("re-render hook failed", "currency", code, "error", err)
			}
		}
	}

	if origin == OriginUser {
		if err := d.prefs.Set(ctx, cc.VisitorID, code); err != nil {
			logger.Log.Errorw("could not persist currency choice", "visitor_id", cc.VisitorID, "error", err)
		}
	}

	if d.publisher != nil {
		d.publisher.Publish(ctx, events.Event{
			Type:      events.TypeCurrencyChanged,
			VisitorID: cc.VisitorID,
			Payload: map[string]any{
				"currency": string(code),
				"origin":   string(origin),
			},
		})
	}
	return nil
}

func (d *DisplaySync) rewritePriceTags(doc *dom.Document, cc *CurrencyContext) {
	f := cc.Formatter()
	for _, el := range doc.FindByAttr(PriceAttr) {
		raw, _ := dom.Attr(el, PriceAttr)
		amount, ok := parseLeadingInt(raw)
		if !ok {
			logger.Log.Warnw("skipping price tag with invalid amount", "value", raw)
			continue
		}

		base := decimal.NewFromInt(amount)
		formatted, err := f.Format(base, cc.Active, false)
		if err != nil {
			continue
		}

		nodes := []*html.Node{dom.NewText(formatted)}
		if cc.Active != models.BaseCurrency {
			small := dom.NewElement("small", html.Attribute{Key: "class", Val: "price-original"})
			small.AppendChild(dom.NewText("(" + f.FormatOriginal(base) + ")"))
			nodes = append(nodes, dom.NewText(" "), small)
		}
		dom.ReplaceChildren(el, nodes...)
	}
}

func syncSelector(doc *dom.Document, code models.CurrencyCode) {
	sel := doc.FindByID(SelectorID)
	if sel == nil {
		return
	}
	for c := sel.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "option" {
			continue
		}
		if v, _ := dom.Attr(c, "value"); v == string(code) {
			dom.SetAttr(c, "selected", "selected")
		} else {
			dom.RemoveAttr(c, "selected")
		}
	}
}

func renderNotice(doc *dom.Document, n *models.Notification) error {
	body, err := doc.Body()
	if err != nil {
		return err
	}
	if old := doc.FindByID(NoticeID); old != nil && old.Parent != nil {
		old.Parent.RemoveChild(old)
	}

	banner := dom.NewElement("div",
		html.Attribute{Key: "id", Val: NoticeID},
		html.Attribute{Key: "class", Val: "currency-notification"},
		html.Attribute{Key: "role", Val: "status"},
		html.Attribute{Key: "data-dismiss-after", Val: strconv.FormatInt(n.DismissAfter.Milliseconds(), 10)},
	)
	title := dom.NewElement("strong")
	title.AppendChild(dom.NewText(n.Title))
	msg := dom.NewElement("small")
	msg.AppendChild(dom.NewText(n.Body))
	closeBtn := dom.NewElement("button",
		html.Attribute{Key: "type", Val: "button"},
		html.Attribute{Key: "class", Val: "currency-notification-close"},
		html.Attribute{Key: "aria-label", Val: "Dismiss"},
	)
	closeBtn.AppendChild(dom.NewText("×"))

	banner.AppendChild(title)
	banner.AppendChild(dom.NewElement("br"))
	banner.AppendChild(msg)
	banner.AppendChild(closeBtn)
	body.AppendChild(banner)
	return nil
}

// parseLeadingInt reads a run of leading digits, optionally prefixed with
// '+', and ignores whatever follows, so "650/hr" is 650. Negative amounts are
// rejected.
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && s[i] == '+' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
