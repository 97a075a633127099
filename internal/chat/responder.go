package chat

import (
	"strings"
	"sync"
	"time"
)

// responder is the canned support agent. It matches keywords in the user's
// message and falls through to a generic acknowledgement.
type responder struct {
	hub *Hub
	mu  sync.Mutex
	// rotating fallback index so repeated questions do not get the exact
	// same canned line
	next int
}

var fallbackReplies = []string{
	"Thanks for reaching out! A member of our support team will get back to you shortly.",
	"Got it — we're looking into this for you.",
	"Thanks for the details. We'll follow up as soon as we can.",
}

var keywordReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"balance", "wallet", "money", "refund"},
		reply:    "Wallet balances can take a moment to sync. Try the refresh button on your dashboard — if the amount still looks wrong, we'll investigate.",
	},
	{
		keywords: []string{"code", "activation"},
		reply:    "Your activation code is shown after payment and also lands in your notifications. Codes are case-insensitive when you enter them.",
	},
	{
		keywords: []string{"pool", "join", "full"},
		reply:    "Full pools start a 5 minute countdown before the game begins. If a pool shows as full, keep an eye on the countdown!",
	},
}

func newResponder(hub *Hub) *responder {
	return &responder{hub: hub}
}

// respondTo schedules a canned reply to a user message after a short typing
// delay.
func (r *responder) respondTo(text string) {
	reply := r.pick(text)
	time.AfterFunc(responseDelay, func() {
		r.hub.Send("support", reply)
	})
}

func (r *responder) pick(text string) string {
	lowered := strings.ToLower(text)
	for _, kr := range keywordReplies {
		for _, kw := range kr.keywords {
			if strings.Contains(lowered, kw) {
				return kr.reply
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	reply := fallbackReplies[r.next%len(fallbackReplies)]
	r.next++
	return reply
}
