package background

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/momentum-api/utils"
)

const findingSeparator = " • "

func localizedMessage(msgType string, data map[string]interface{}) (PushMessage, error) {
	heading, err := utils.Localize(fmt.Sprintf("notification.%s.heading", msgType), nil)
	if err != nil {
		return PushMessage{}, err
	}

	content, err := utils.Localize(fmt.Sprintf("notification.%s.content", msgType), data)
	if err != nil {
		return PushMessage{}, err
	}

	return PushMessage{
		Title: heading,
		Body:  content,
	}, nil
}

// HealthAlertMessage lists findings in a single alert
func HealthAlertMessage(findings []string) (PushMessage, error) {
	if len(findings) == 0 {
		return PushMessage{}, fmt.Errorf("no findings in alert")
	}

	return localizedMessage("health_alert", map[string]interface{}{
		"Findings": strings.Join(findings, findingSeparator),
	})
}

// SampleMessage confirms that push delivery works
func SampleMessage() (PushMessage, error) {
	return localizedMessage("test", nil)
}
