package seeds

import "github.com/saulo-duarte/quiz-lambda/internal/quiz"

const (
	teacherUsername = "teacher"
	samplePassword  = "password123"
)

var studentNames = []string{
	"john_doe", "jane_smith", "mike_johnson", "sarah_wilson", "david_brown",
	"emily_davis", "chris_miller", "amanda_garcia", "james_rodriguez", "jessica_martinez",
	"ryan_anderson", "melissa_taylor", "kevin_thomas", "nicole_jackson", "brandon_white",
	"stephanie_harris", "daniel_martin", "rachel_thompson", "andrew_garcia", "laura_martinez",
	"matthew_robinson", "amy_clark", "justin_rodriguez", "megan_lewis", "tyler_lee",
}

func question(text, correct string, options ...string) quiz.Question {
	return quiz.Question{Text: text, Options: options, CorrectOption: correct}
}

func sampleQuizzes() []*quiz.Quiz {
	return []*quiz.Quiz{
		{
			Title:    "Basic Mathematics",
			Username: teacherUsername,
			Questions: []quiz.Question{
				question("What is 2 + 2?", "4", "3", "4", "5", "6"),
				question("What is 10 - 3?", "7", "6", "7", "8", "9"),
				question("What is 5 × 3?", "15", "12", "15", "18", "20"),
				question("What is 20 ÷ 4?", "5", "4", "5", "6", "7"),
				question("What is 3²?", "9", "6", "8", "9", "12"),
			},
		},
		{
			Title:    "Basic Science",
			Username: teacherUsername,
			Questions: []quiz.Question{
				question("What is H2O?", "Water", "Oxygen", "Water", "Hydrogen", "Carbon"),
				question("How many planets are in our solar system?", "8", "7", "8", "9", "10"),
				question("What gas do plants absorb?", "Carbon Dioxide", "Oxygen", "Nitrogen", "Carbon Dioxide", "Helium"),
				question("What is the largest organ in human body?", "Skin", "Heart", "Brain", "Liver", "Skin"),
				question("What is the speed of light?", "300,000 km/s", "300,000 km/s", "150,000 km/s", "450,000 km/s", "600,000 km/s"),
			},
		},
		{
			Title:    "World History",
			Username: teacherUsername,
			Questions: []quiz.Question{
				question("In which year did World War II end?", "1945", "1944", "1945", "1946", "1947"),
				question("Who was the first person on the moon?", "Neil Armstrong", "Buzz Aldrin", "Neil Armstrong", "John Glenn", "Alan Shepard"),
				question("Which empire built Machu Picchu?", "Inca", "Aztec", "Maya", "Inca", "Olmec"),
				question("When did the Berlin Wall fall?", "1989", "1987", "1988", "1989", "1990"),
				question("Who invented the telephone?", "Alexander Graham Bell", "Thomas Edison", "Alexander Graham Bell", "Nikola Tesla", "Guglielmo Marconi"),
			},
		},
	}
}
