package domain

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// ReminderText is the weekly message. <!channel> notifies everyone in the
// channel, same as the platform's @channel mention.
const ReminderText = "take out the trash <!channel>"

// TrashGifs is the pool of GIFs appended to each reminder; one is picked at
// random per send.
var TrashGifs = []string{
	"https://media.giphy.com/media/QuvgjttKi5GL4TPtLB/giphy.gif",
	"https://media.giphy.com/media/tVOlt6mzRFNPuLFL40/giphy.gif",
	"https://media.giphy.com/media/FYXNxV12QG4HspSgOo/giphy.gif",
	"https://media.giphy.com/media/l2Jeg2UYi9opZqxJS/giphy.gif",
	"https://media.giphy.com/media/26ufffLixTAsLgA8g/giphy.gif",
	"https://media.giphy.com/media/11Y9TiZzmEBe25QRSw/giphy.gif",
	"https://media.giphy.com/media/5xaOcLCBzBw4QrtdDP2/giphy.gif",
}
