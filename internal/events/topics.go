package events

import "strconv"

const (
	TopicStockChanged       = "inventory.stock.changed"
	TopicOrderCreated       = "inventory.order.created"
	TopicOrderStatusChanged = "inventory.order.status"
)

// PartitionKey keeps all events for one entity on one partition so consumers
// see them in order.
func PartitionKey(id int64) []byte { return []byte(strconv.FormatInt(id, 10)) }
