package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch-control/internal/features/execution/domain"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTNotifier implements ports.Notifier by publishing alerts to an MQTT
// broker, one topic per audience: <prefix>/alerts/ops for operations,
// <prefix>/alerts/customer for customer-facing alerts.
type MQTTNotifier struct {
	client mqtt.Client
	prefix string
}

// NewMQTTNotifier connects to the broker and returns the notifier.
func NewMQTTNotifier(brokerURL, clientID, topicPrefix string) (*MQTTNotifier, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &MQTTNotifier{
		client: client,
		prefix: topicPrefix,
	}, nil
}

// Notify implements ports.Notifier. The alert is published as JSON at
// QoS 1 on the topic matching its audience.
func (n *MQTTNotifier) Notify(ctx context.Context, alert domain.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	topic := n.prefix + "/alerts/customer"
	if alert.OpsNotified {
		topic = n.prefix + "/alerts/ops"
	}

	token := n.client.Publish(topic, 1, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish alert to %s: %w", topic, err)
	}

	return nil
}

// Close disconnects from the broker.
func (n *MQTTNotifier) Close() {
	if n.client.IsConnected() {
		n.client.Disconnect(250)
	}
}
