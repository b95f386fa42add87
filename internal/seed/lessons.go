// Package seed holds the built-in demo content: one complete A2 lesson in
// the structure the frontend renders, plus a test teacher account.
package seed

import "lesenhoeren/internal/models"

// Test teacher account created alongside the demo content
const (
	TeacherName     = "Profesor de Prueba"
	TeacherEmail    = "teacher.test@europaschool.org"
	TeacherPassword = "teacher123"
)

// Lessons returns the demo lesson set
func Lessons() []models.Lesson {
	return []models.Lesson{
		{
			Level:        models.LevelA2,
			LessonNumber: 1,
			Title:        "Lección 1",
			Readings: []models.ReadingPart{
				{
					Title:        "Teil 1",
					Instructions: "Lies den Text und beantworte die Fragen.",
					Text: "Maria wohnt in Berlin. Sie arbeitet in einem Café in der " +
						"Stadtmitte. Jeden Morgen fährt sie mit dem Fahrrad zur Arbeit. " +
						"Am Wochenende besucht sie gern ihre Freunde oder geht im Park " +
						"spazieren.",
					Questions: []models.Question{
						{
							Text:          "Wo wohnt Maria?",
							Options:       []string{"in Hamburg", "in Berlin", "in München"},
							CorrectAnswer: "in Berlin",
						},
						{
							Text:          "Wie fährt Maria zur Arbeit?",
							Options:       []string{"mit dem Bus", "mit dem Auto", "mit dem Fahrrad"},
							CorrectAnswer: "mit dem Fahrrad",
						},
					},
				},
				{
					Title:        "Teil 2",
					Instructions: "Lies die Anzeige und wähle die richtige Antwort.",
					Text: "Deutschkurs A2 im Sprachzentrum Mitte! Montags und mittwochs " +
						"von 18 bis 20 Uhr. Der Kurs beginnt am 5. März und kostet 120 Euro. " +
						"Anmeldung per E-Mail oder direkt im Büro.",
					Questions: []models.Question{
						{
							Text:          "Wann beginnt der Kurs?",
							Options:       []string{"am 5. März", "am 5. Mai", "am 15. März"},
							CorrectAnswer: "am 5. März",
						},
						{
							Text:          "Wie viel kostet der Kurs?",
							Options:       []string{"100 Euro", "120 Euro", "200 Euro"},
							CorrectAnswer: "120 Euro",
						},
					},
				},
				{
					Title:        "Teil 3",
					Instructions: "Lies die E-Mail und beantworte die Frage.",
					Text: "Hallo Tom, am Samstag feiere ich meinen Geburtstag. Die Party " +
						"beginnt um 19 Uhr bei mir zu Hause. Bring gern etwas zu trinken " +
						"mit! Viele Grüße, Lena",
					Questions: []models.Question{
						{
							Text:          "Was soll Tom mitbringen?",
							Options:       []string{"etwas zu essen", "etwas zu trinken", "Musik"},
							CorrectAnswer: "etwas zu trinken",
						},
					},
				},
				{
					Title:        "Teil 4",
					Instructions: "Richtig oder falsch?",
					Text: "Das Schwimmbad ist im Sommer täglich von 9 bis 20 Uhr geöffnet. " +
						"Kinder unter sechs Jahren haben freien Eintritt.",
					Questions: []models.Question{
						{
							Text:          "Kinder unter sechs Jahren zahlen keinen Eintritt.",
							Options:       []string{"richtig", "falsch"},
							CorrectAnswer: "richtig",
						},
					},
				},
			},
			Listenings: []models.ListeningPart{
				{
					Title:        "Hören Teil 1",
					AudioURL:     "/audio/a2/lektion1/hoeren-teil1.mp3",
					Instructions: "Hör zu und wähle die richtige Antwort.",
					Questions: []models.Question{
						{
							Text:          "Um wie viel Uhr fährt der Zug nach Köln?",
							Options:       []string{"um 14:15 Uhr", "um 14:50 Uhr", "um 15:40 Uhr"},
							CorrectAnswer: "um 14:50 Uhr",
						},
					},
				},
				{
					Title:        "Hören Teil 2",
					AudioURL:     "/audio/a2/lektion1/hoeren-teil2.mp3",
					Instructions: "Wer macht was? Ordne die Aufgaben den Personen zu.",
					Example:      "Beispiel: Papa → kocht das Abendessen",
					DragDropOptions: []models.DragDropOption{
						{ID: "a", Text: "kauft ein"},
						{ID: "b", Text: "räumt das Zimmer auf"},
						{ID: "c", Text: "macht die Hausaufgaben"},
					},
					DragDropAnswers: []models.DragDropAnswer{
						{Person: "Mama", Solution: "a"},
						{Person: "Jonas", Solution: "b"},
						{Person: "Lisa", Solution: "c"},
					},
				},
				{
					Title:        "Hören Teil 3",
					AudioURL:     "/audio/a2/lektion1/hoeren-teil3.mp3",
					Instructions: "Hör das Gespräch und beantworte die Frage.",
					Questions: []models.Question{
						{
							Text:          "Was bestellt die Frau?",
							Options:       []string{"einen Kaffee", "einen Tee", "ein Wasser"},
							CorrectAnswer: "einen Tee",
						},
					},
				},
				{
					Title:        "Hören Teil 4",
					AudioURL:     "/audio/a2/lektion1/hoeren-teil4.mp3",
					Instructions: "Richtig oder falsch?",
					Questions: []models.Question{
						{
							Text:          "Das Konzert findet am Freitag statt.",
							Options:       []string{"richtig", "falsch"},
							CorrectAnswer: "falsch",
						},
					},
				},
			},
		},
	}
}
