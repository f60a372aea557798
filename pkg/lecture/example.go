package lecture

func exampleLink(id, label, url string) *Link {
	return &Link{ID: id, Label: label, URL: url}
}

func exampleTimes(begin, end string, days ...Weekday) []*TimeSlot {
	times := make([]*TimeSlot, 0, len(days))
	for i, d := range days {
		times = append(times, &TimeSlot{
			ID:        exampleID(i + 1),
			Weekday:   d,
			BeginTime: begin,
			EndTime:   end,
		})
	}
	return times
}

func exampleID(n int) string {
	const zero = "00000000-0000-0000-0000-000000000000"
	digits := []byte(zero)
	for i := len(digits) - 1; n > 0 && i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits)
}

// Example returns the demo timetable shown by `timetable example`.
func Example() *State {
	return &State{
		Version: CurrentVersion,
		Lectures: []*Lecture{
			{
				ID:    exampleID(1),
				Title: "Cloud Computing",
				Times: exampleTimes("10:30", "11:45", Monday, Wednesday),
				Links: []*Link{
					exampleLink(exampleID(1), "Zoom", "https://www.zoom.us"),
					exampleLink(exampleID(2), "Material", "https://www.kubernetes.io"),
				},
			},
			{
				ID:    exampleID(2),
				Title: "Introduction to Economics",
				Times: exampleTimes("12:00", "13:15", Monday, Wednesday),
			},
			{
				ID:    exampleID(3),
				Title: "Crime and Society",
				Times: exampleTimes("14:00", "15:15", Monday, Wednesday),
				Links: []*Link{
					exampleLink(exampleID(1), "Zoom", "https://www.zoom.us"),
				},
			},
			{
				ID:    exampleID(4),
				Title: "Authentic Record of Chosun Dynasty",
				Times: exampleTimes("15:30", "16:45", Monday, Wednesday),
				Links: []*Link{
					exampleLink(exampleID(1), "Google Meet", "https://apps.google.com/meet/"),
					exampleLink(exampleID(2), "Textbook", "http://sillok.history.go.kr"),
				},
			},
			{
				ID:    exampleID(5),
				Title: "French (Beginner)",
				Times: exampleTimes("12:00", "13:15", Tuesday, Thursday),
				Links: []*Link{
					exampleLink(exampleID(1), "Blackboard", "https://kulms.korea.ac.kr"),
					exampleLink(exampleID(2), "Material", "https://en.wikipedia.org/wiki/French_language"),
				},
			},
			{
				ID:    exampleID(6),
				Title: "Advanced Logic",
				Times: exampleTimes("14:00", "15:15", Tuesday, Thursday),
				Links: []*Link{
					exampleLink(exampleID(1), "Blackboard", "https://kulms.korea.ac.kr"),
				},
			},
			{
				ID:    exampleID(7),
				Title: "Freshman Seminar I",
				Times: exampleTimes("12:00", "15:15", Friday),
			},
		},
	}
}
