package fitness

import (
	"strings"

	"github.com/bitmark-inc/momentum-api/schema"
)

// channelPatterns maps a data source identifier to its channel. A source
// belongs to the first channel whose pattern it contains.
var channelPatterns = []struct {
	pattern string
	channel schema.Channel
}{
	{"step_count", schema.ChannelSteps},
	{"heart_rate", schema.ChannelHeartRate},
	{"sleep", schema.ChannelSleep},
	{"calories", schema.ChannelCalories},
	{"weight", schema.ChannelWeight},
	{"height", schema.ChannelHeight},
}

// Classify returns the channel of a data source identifier, or
// schema.ChannelUnknown when no pattern matches.
func Classify(dataSourceID string) schema.Channel {
	for _, p := range channelPatterns {
		if strings.Contains(dataSourceID, p.pattern) {
			return p.channel
		}
	}
	return schema.ChannelUnknown
}
