package parser

import "gitlab.com/gomidi/midi/v2/smf"

// eachEvent calls yield for every event of every track in absolute time.
// At equal times note ends come first, so a key released and struck again
// on the same tick reads as two notes.
func eachEvent(mid *smf.SMF, yield func(time int64, msg smf.Message)) {
	// trackPos is the index of the NEXT event of each track.
	trackPos := make([]int, len(mid.Tracks))
	// trackTime is the time of the LAST event of each track.
	trackTime := make([]int64, len(mid.Tracks))
	for {
		earliest := -1
		var earliestTime int64
		var earliestEnd bool
		for i, t := range mid.Tracks {
			p := trackPos[i]
			if p >= len(t) {
				continue
			}
			time := trackTime[i] + int64(t[p].Delta)
			end := t[p].Message.GetNoteEnd(nil, nil)
			if earliest < 0 || time < earliestTime || (time == earliestTime && end && !earliestEnd) {
				earliest, earliestTime, earliestEnd = i, time, end
			}
		}
		if earliest < 0 {
			return
		}
		msg := mid.Tracks[earliest][trackPos[earliest]].Message
		if !msg.Is(smf.MetaEndOfTrackMsg) {
			yield(earliestTime, msg)
		}
		trackPos[earliest]++
		trackTime[earliest] = earliestTime
	}
}
