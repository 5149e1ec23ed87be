package playback

import "time"

// Clock supplies the current time to the ad-skip cooldown and the
// confirmation timeout.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
