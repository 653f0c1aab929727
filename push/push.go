package push

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/albertisntreal/showdown-survivor/model"
)

// Message is the payload shown in the browser notification.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// Notifier delivers a message to every push subscription a user has
// registered. It returns the endpoints that are gone, so the caller can drop
// them from the user's subscription list. Delivery failures other than a dead
// endpoint are logged and otherwise ignored, a missed notification is not
// worth failing an operation over.
type Notifier interface {
	Notify(ctx context.Context, u *model.User, msg Message) []string
}

type sendFunc func(ctx context.Context, message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error)

// New returns a web-push Notifier using the given VAPID key pair. If either
// key is empty the returned Notifier only logs, which keeps local development
// working without generating keys.
func New(vapidPublicKey, vapidPrivateKey, subscriber string) Notifier {
	if vapidPublicKey == "" || vapidPrivateKey == "" {
		log.Printf("push: VAPID keys not configured, notifications will only be logged")
		return &logNotifier{}
	}
	return &webPushNotifier{
		options: webpush.Options{
			Subscriber:      subscriber,
			VAPIDPublicKey:  vapidPublicKey,
			VAPIDPrivateKey: vapidPrivateKey,
			TTL:             60 * 60 * 12,
		},
		send: webpush.SendNotificationWithContext,
	}
}

type webPushNotifier struct {
	options webpush.Options
	send    sendFunc
}

func (n *webPushNotifier) Notify(ctx context.Context, u *model.User, msg Message) []string {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("push: error marshalling message: %v", err)
		return nil
	}

	var gone []string
	for _, sub := range u.Subscriptions {
		s := &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				Auth:   sub.Auth,
				P256dh: sub.P256dh,
			},
		}
		opts := n.options
		resp, err := n.send(ctx, payload, s, &opts)
		if err != nil {
			log.Printf("push: error sending to %s for user %s: %v", sub.Endpoint, u.ID, err)
			continue
		}
		resp.Body.Close()

		// 404 and 410 mean the browser dropped the subscription.
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
			gone = append(gone, sub.Endpoint)
		}
	}
	return gone
}

type logNotifier struct{}

func (n *logNotifier) Notify(ctx context.Context, u *model.User, msg Message) []string {
	log.Printf("push: [%s] %s - %s", u.ID, msg.Title, msg.Body)
	return nil
}
