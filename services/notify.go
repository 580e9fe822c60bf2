package services

import (
	"fmt"
	"path/filepath"

	"github.com/XidanAbds29/huehouse-api/initializers"
	"github.com/XidanAbds29/huehouse-api/utils"
)

// EmailNotifier mails each new order to the shop operator. Missing mail
// configuration fails only this call, the order itself is already placed.
type EmailNotifier struct{}

func (n *EmailNotifier) NotifyNewOrder(notification OrderNotification) error {
	cfg := initializers.Cfg
	if cfg.SMTPAddress == "" || cfg.SMTPHost == "" || cfg.FromEmail == "" ||
		cfg.FromEmailPassword == "" || cfg.OwnerEmail == "" {
		return fmt.Errorf("mail configuration is incomplete")
	}

	ref := notification.OrderID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	subject := fmt.Sprintf("New Order #%s - ৳%d", ref, notification.TotalAmount)

	templatePath := filepath.Join("templates", "order_notification.html")
	return utils.SendEmail(cfg.OwnerEmail, subject, notification, templatePath)
}
