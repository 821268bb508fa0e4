package kafka

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidConnectionString - строка подключения Event Hub не разобрана.
var ErrInvalidConnectionString = errors.New("некорректная строка подключения Event Hub")

// kafkaPort - порт Kafka-эндпоинта пространства имен Event Hubs.
const kafkaPort = "9093"

// ConnectionString - разобранная строка подключения Event Hubs.
type ConnectionString struct {
	Namespace             string // <ns>.servicebus.windows.net
	KeyName               string
	Key                   string
	SharedAccessSignature string
	EntityPath            string
}

// ParseConnectionString разбирает строку вида
// Endpoint=sb://<ns>/;SharedAccessKeyName=...;SharedAccessKey=...[;EntityPath=...].
func ParseConnectionString(s string) (ConnectionString, error) {
	var cs ConnectionString
	var endpoint string

	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return ConnectionString{}, fmt.Errorf("%w: элемент %q без '='", ErrInvalidConnectionString, part)
		}
		switch strings.ToLower(key) {
		case "endpoint":
			endpoint = value
		case "sharedaccesskeyname":
			cs.KeyName = value
		case "sharedaccesskey":
			cs.Key = value
		case "sharedaccesssignature":
			cs.SharedAccessSignature = value
		case "entitypath":
			cs.EntityPath = value
		}
	}

	if endpoint == "" {
		return ConnectionString{}, fmt.Errorf("%w: нет Endpoint", ErrInvalidConnectionString)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return ConnectionString{}, fmt.Errorf("%w: Endpoint: %v", ErrInvalidConnectionString, err)
	}
	if u.Scheme != "sb" || u.Hostname() == "" {
		return ConnectionString{}, fmt.Errorf("%w: Endpoint должен иметь вид sb://<namespace>/", ErrInvalidConnectionString)
	}
	cs.Namespace = u.Hostname()

	hasKey := cs.KeyName != "" && cs.Key != ""
	if !hasKey && cs.SharedAccessSignature == "" {
		return ConnectionString{}, fmt.Errorf("%w: нужны SharedAccessKeyName и SharedAccessKey или SharedAccessSignature", ErrInvalidConnectionString)
	}

	return cs, nil
}

// BrokerAddr возвращает адрес Kafka-эндпоинта пространства имен.
func (c ConnectionString) BrokerAddr() string {
	return c.Namespace + ":" + kafkaPort
}
