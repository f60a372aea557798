package reducer

import "fmt"

// Describe renders the address an action targets, e.g.
// "lecture(<id>)/times/update(<id>)/endTime". It is meant for logs.
func Describe(a Action) string {
	switch a := a.(type) {
	case AddLecture:
		return "lectures/add"
	case RemoveLecture:
		return fmt.Sprintf("lectures/remove(%s)", a.ID)
	case UpdateLecture:
		return fmt.Sprintf("lecture(%s)/%s", a.ID, describeLecture(a.Action))
	default:
		return "unknown"
	}
}

func describeLecture(a LectureAction) string {
	switch a := a.(type) {
	case UpdateTitle:
		return "title"
	case UpdateTimes:
		return "times/" + describeTimes(a.Action)
	case UpdateLinks:
		return "links/" + describeLinks(a.Action)
	default:
		return "unknown"
	}
}

func describeTimes(a TimesAction) string {
	switch a := a.(type) {
	case AddTime:
		return "add"
	case RemoveTime:
		return fmt.Sprintf("remove(%s)", a.ID)
	case UpdateTime:
		field := "unknown"
		switch a.Action.(type) {
		case UpdateWeekday:
			field = "weekday"
		case UpdateBeginTime:
			field = "beginTime"
		case UpdateEndTime:
			field = "endTime"
		}
		return fmt.Sprintf("update(%s)/%s", a.ID, field)
	default:
		return "unknown"
	}
}

func describeLinks(a LinksAction) string {
	switch a := a.(type) {
	case AddLink:
		return "add"
	case RemoveLink:
		return fmt.Sprintf("remove(%s)", a.ID)
	case UpdateLink:
		field := "unknown"
		switch a.Action.(type) {
		case UpdateLabel:
			field = "label"
		case UpdateURL:
			field = "url"
		}
		return fmt.Sprintf("update(%s)/%s", a.ID, field)
	default:
		return "unknown"
	}
}
