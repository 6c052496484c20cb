package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

// Init creates the process-wide snowflake node. Node ID must be unique
// across instances (0-1023). Call once before any NextID.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// NextID returns a new unique, time-ordered ID.
func NextID() int64 {
	return node.Generate().Int64()
}
