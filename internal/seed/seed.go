// Package seed produces the fixed demo dataset the in-memory backend
// boots with, and which the client layers fall back to when a load fails.
package seed

import (
	"time"

	"github.com/chiragSahani/copilot-inbox/internal/model"
)

// Data is the full seeded state of the backend.
type Data struct {
	Conversations    []model.Conversation
	KnowledgeSources []model.KnowledgeSource
	Users            []model.User
	Teams            []model.Team
	Notifications    []model.Notification
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Conversations returns the seeded conversation threads.
func Conversations() []model.Conversation {
	return []model.Conversation{
		{
			ID: "conv-1",
			Customer: model.Customer{
				ID:    "cust-1",
				Name:  "Luis Davison",
				Email: "luis.davison@example.com",
			},
			Messages: []model.Message{
				{
					ID:        "msg-1",
					Content:   "I bought a product from your store in November as a Christmas gift for a member of my family. However, it turns out they have something very similar already. I was hoping you'd be able to refund me, as it is un-opened.",
					Sender:    model.SenderCustomer,
					Timestamp: mustTime("2023-05-18T10:30:00Z"),
				},
				{
					ID:        "msg-2",
					Content:   "Let me just look into this for you, Luis.",
					Sender:    model.SenderAgent,
					Timestamp: mustTime("2023-05-18T10:32:00Z"),
				},
			},
			LastMessage: "Let me just look into this for you, Luis.",
			UpdatedAt:   mustTime("2023-05-18T10:32:00Z"),
			Category:    model.CategoryOrders,
			Unread:      0,
		},
		{
			ID: "conv-2",
			Customer: model.Customer{
				ID:    "cust-2",
				Name:  "Sarah Miller",
				Email: "sarah.miller@example.com",
			},
			Messages: []model.Message{
				{
					ID:        "msg-3",
					Content:   "Hello, I'm having trouble with my recent order #45678. The package was supposed to arrive yesterday but I haven't received it yet.",
					Sender:    model.SenderCustomer,
					Timestamp: mustTime("2023-05-17T14:20:00Z"),
				},
			},
			LastMessage: "Hello, I'm having trouble with my recent order #45678. The package was supposed to arrive yesterday but I haven't received it yet.",
			UpdatedAt:   mustTime("2023-05-17T14:20:00Z"),
			Category:    model.CategoryOrders,
			Unread:      1,
		},
		{
			ID: "conv-3",
			Customer: model.Customer{
				ID:    "cust-3",
				Name:  "John Smith",
				Email: "john.smith@example.com",
			},
			Messages: []model.Message{
				{
					ID:        "msg-4",
					Content:   "Hi there, I need help with setting up my new device. The instructions aren't very clear.",
					Sender:    model.SenderCustomer,
					Timestamp: mustTime("2023-05-16T09:15:00Z"),
				},
			},
			LastMessage: "Hi there, I need help with setting up my new device. The instructions aren't very clear.",
			UpdatedAt:   mustTime("2023-05-16T09:15:00Z"),
			Category:    model.CategorySupport,
			Unread:      1,
		},
		{
			ID: "conv-4",
			Customer: model.Customer{
				ID:    "cust-4",
				Name:  "Emma Johnson",
				Email: "emma.johnson@example.com",
			},
			Messages: []model.Message{
				{
					ID:        "msg-5",
					Content:   "I'd like to cancel my subscription. How do I do that?",
					Sender:    model.SenderCustomer,
					Timestamp: mustTime("2023-05-15T16:45:00Z"),
				},
			},
			LastMessage: "I'd like to cancel my subscription. How do I do that?",
			UpdatedAt:   mustTime("2023-05-15T16:45:00Z"),
			Category:    model.CategorySupport,
			Unread:      1,
		},
		{
			ID: "conv-5",
			Customer: model.Customer{
				ID:    "cust-5",
				Name:  "Michael Brown",
				Email: "michael.brown@example.com",
			},
			Messages: []model.Message{
				{
					ID:        "msg-6",
					Content:   "Do you offer international shipping? I'm interested in ordering but I live overseas.",
					Sender:    model.SenderCustomer,
					Timestamp: mustTime("2023-05-14T11:30:00Z"),
				},
			},
			LastMessage: "Do you offer international shipping? I'm interested in ordering but I live overseas.",
			UpdatedAt:   mustTime("2023-05-14T11:30:00Z"),
			Category:    model.CategoryGeneral,
			Unread:      1,
		},
	}
}

// KnowledgeSources returns the seeded knowledge base.
func KnowledgeSources() []model.KnowledgeSource {
	return []model.KnowledgeSource{
		{
			ID:       "kb-1",
			Title:    "Getting a refund",
			Excerpt:  "Learn about our refund policy and how to request a refund for your purchase.",
			Content:  "We offer refunds for products returned within 60 days of purchase. The item must be in its original condition and packaging. To request a refund, please contact our customer support team with your order number and reason for return.",
			Category: "returns",
		},
		{
			ID:       "kb-2",
			Title:    "Refund for an order placed by mistake",
			Excerpt:  "Information about getting a refund for an accidental purchase.",
			Content:  "If you placed an order by mistake, please contact us within 24 hours of purchase. We can cancel the order if it hasn't shipped yet. If the order has already shipped, you'll need to return the item following our standard return procedure.",
			Category: "returns",
		},
		{
			ID:       "kb-3",
			Title:    "Refund for an unwanted gift",
			Excerpt:  "How to return and get a refund for unwanted gifts.",
			Content:  "Unwanted gifts can be returned for store credit or exchange within 90 days of purchase. You'll need the gift receipt or order number. If you don't have either, we may still be able to process the return based on the payment method used for the purchase.",
			Category: "returns",
		},
		{
			ID:       "kb-4",
			Title:    "Shipping Policy",
			Excerpt:  "Information about our shipping options, timeframes, and costs.",
			Content:  "We offer standard shipping (3-5 business days), expedited shipping (2 business days), and overnight shipping. International shipping is available to select countries with delivery times ranging from 7-21 business days depending on the destination.",
			Category: "shipping",
		},
		{
			ID:       "kb-5",
			Title:    "Product Warranty",
			Excerpt:  "Details about our product warranty coverage and claims process.",
			Content:  "All our products come with a standard 1-year warranty covering manufacturing defects. Premium products have extended warranties of up to 3 years. To make a warranty claim, please contact our support team with your order details and a description of the issue.",
			Category: "warranty",
		},
	}
}

// Users returns the seeded agents.
func Users() []model.User {
	now := time.Now()
	return []model.User{
		{
			ID:         "user-1",
			Name:       "Alex Johnson",
			Email:      "alex.johnson@example.com",
			Role:       model.RoleAdmin,
			Avatar:     "/avatars/alex.jpg",
			Status:     model.PresenceOnline,
			Teams:      []string{"team-1", "team-2"},
			LastActive: now,
		},
		{
			ID:         "user-2",
			Name:       "Sarah Williams",
			Email:      "sarah.williams@example.com",
			Role:       model.RoleAgent,
			Avatar:     "/avatars/sarah.jpg",
			Status:     model.PresenceAway,
			Teams:      []string{"team-1"},
			LastActive: now.Add(-30 * time.Minute),
		},
		{
			ID:         "user-3",
			Name:       "Michael Brown",
			Email:      "michael.brown@example.com",
			Role:       model.RoleAgent,
			Avatar:     "/avatars/michael.jpg",
			Status:     model.PresenceOffline,
			Teams:      []string{"team-2"},
			LastActive: now.Add(-3 * time.Hour),
		},
	}
}

// Teams returns the seeded teams.
func Teams() []model.Team {
	now := time.Now()
	return []model.Team{
		{
			ID:          "team-1",
			Name:        "Customer Support",
			Description: "Handles general customer inquiries and issues",
			Members:     []string{"user-1", "user-2"},
			CreatedAt:   now.Add(-30 * 24 * time.Hour),
		},
		{
			ID:          "team-2",
			Name:        "Technical Support",
			Description: "Handles technical issues and product-specific questions",
			Members:     []string{"user-1", "user-3"},
			CreatedAt:   now.Add(-15 * 24 * time.Hour),
		},
	}
}

// Notifications returns the seeded notification list.
func Notifications() []model.Notification {
	now := time.Now()
	return []model.Notification{
		{
			ID:        "notif-1",
			Type:      model.NotificationMessage,
			Content:   "New message from Luis Davison",
			Read:      false,
			CreatedAt: now.Add(-5 * time.Minute),
			RelatedID: "conv-1",
		},
		{
			ID:        "notif-2",
			Type:      model.NotificationAssignment,
			Content:   "You've been assigned to a new conversation",
			Read:      true,
			CreatedAt: now.Add(-time.Hour),
			RelatedID: "conv-2",
		},
		{
			ID:        "notif-3",
			Type:      model.NotificationSystem,
			Content:   "System maintenance scheduled for tonight at 2 AM",
			Read:      false,
			CreatedAt: now.Add(-3 * time.Hour),
		},
	}
}

// Generate builds the complete seed dataset.
func Generate() Data {
	return Data{
		Conversations:    Conversations(),
		KnowledgeSources: KnowledgeSources(),
		Users:            Users(),
		Teams:            Teams(),
		Notifications:    Notifications(),
	}
}
