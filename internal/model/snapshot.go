package model

// SnapshotQuestion is one question as frozen into an attempt. The correct
// answer is copied here so scoring never reads the live bank again.
type SnapshotQuestion struct {
	QuestionID    uint `json:"question_id"`
	CorrectAnswer int  `json:"correct_answer"`
}

type SnapshotMondai struct {
	Number    int                `json:"number"`
	Questions []SnapshotQuestion `json:"questions"`
}

type SnapshotSection struct {
	SectionType string           `json:"section_type"`
	Mondai      []SnapshotMondai `json:"mondai"`
}

// QuestionSnapshot is the ordered question set shown to a candidate. It is
// stored by value inside the attempt row and never changes after creation.
type QuestionSnapshot struct {
	Sections []SnapshotSection `json:"sections"`
}

func (s QuestionSnapshot) SectionTypes() []string {
	types := make([]string, len(s.Sections))
	for i, sec := range s.Sections {
		types[i] = sec.SectionType
	}
	return types
}

func (s QuestionSnapshot) Section(sectionType string) (*SnapshotSection, bool) {
	for i := range s.Sections {
		if s.Sections[i].SectionType == sectionType {
			return &s.Sections[i], true
		}
	}
	return nil, false
}

// SectionOf reports which section holds the question.
func (s QuestionSnapshot) SectionOf(questionID uint) (string, bool) {
	for _, sec := range s.Sections {
		for _, m := range sec.Mondai {
			for _, q := range m.Questions {
				if q.QuestionID == questionID {
					return sec.SectionType, true
				}
			}
		}
	}
	return "", false
}

func (s SnapshotSection) QuestionCount() int {
	n := 0
	for _, m := range s.Mondai {
		n += len(m.Questions)
	}
	return n
}

// QuestionIDs flattens the snapshot in presentation order.
func (s QuestionSnapshot) QuestionIDs() []uint {
	var ids []uint
	for _, sec := range s.Sections {
		for _, m := range sec.Mondai {
			for _, q := range m.Questions {
				ids = append(ids, q.QuestionID)
			}
		}
	}
	return ids
}
