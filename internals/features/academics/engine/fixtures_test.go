package engine

func fp(v float64) *float64 { return &v }

func subj(id string, g Grade, credits float64) Subject {
	return Subject{ID: id, Code: "C-" + id, Name: "Subject " + id, Grade: g, Credits: credits}
}

func detailed(year, term int, subjects ...Subject) Semester {
	if subjects == nil {
		subjects = []Subject{}
	}
	return Semester{
		ID:       SemesterKey(year, term),
		Year:     year,
		Term:     term,
		Mode:     ModeDetailed,
		Subjects: subjects,
	}
}

func manual(year, term int, sgpa float64) Semester {
	return Semester{
		ID:         SemesterKey(year, term),
		Year:       year,
		Term:       term,
		Mode:       ModeManual,
		Subjects:   []Subject{},
		ManualSGPA: fp(sgpa),
	}
}

func withOfficial(sem Semester, sgpa float64) Semester {
	for i := range sem.Subjects {
		sem.Subjects[i].OfficialSGPA = fp(sgpa)
	}
	return sem
}
