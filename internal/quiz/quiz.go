// Package quiz maps five yes/no answers to a recommended anime title.
package quiz

import (
	"strings"

	"github.com/Belphemur/AniWiki/internal/apperrors"
)

// CodeLength is the number of questions, and so the length of a code.
const CodeLength = 5

// Question is one binary quiz question. Answer '0' picks A, '1' picks B.
type Question struct {
	Prompt string
	A, B   string
}

// Questions are asked in code order: the first answer is the first character.
var Questions = [CodeLength]Question{
	{Prompt: "Pick a mood", A: "Intense", B: "Relaxed"},
	{Prompt: "Pick a tone", A: "Dark", B: "Lighthearted"},
	{Prompt: "Pick a setting", A: "Fantastic", B: "Everyday"},
	{Prompt: "Pick a length", A: "Long-running", B: "Short"},
	{Prompt: "Pick a focus", A: "Action", B: "Characters"},
}

// recommendations has one entry for every 5-bit code.
var recommendations = map[string]string{
	"00000": "Attack on Titan",
	"00001": "Fullmetal Alchemist: Brotherhood",
	"00010": "Chainsaw Man",
	"00011": "Made in Abyss",
	"00100": "Vinland Saga",
	"00101": "Monster",
	"00110": "Jujutsu Kaisen",
	"00111": "Erased",
	"01000": "One Piece",
	"01001": "Hunter x Hunter",
	"01010": "Demon Slayer",
	"01011": "Frieren: Beyond Journey's End",
	"01100": "Haikyu!!",
	"01101": "March Comes in Like a Lion",
	"01110": "Mob Psycho 100",
	"01111": "Spy x Family",
	"10000": "Berserk",
	"10001": "Steins;Gate",
	"10010": "Cyberpunk: Edgerunners",
	"10011": "Mushishi",
	"10100": "Death Note",
	"10101": "Your Lie in April",
	"10110": "Cowboy Bebop",
	"10111": "Anohana: The Flower We Saw That Day",
	"11000": "Fairy Tail",
	"11001": "Natsume's Book of Friends",
	"11010": "Kiki's Delivery Service",
	"11011": "Laid-Back Camp",
	"11100": "Kaguya-sama: Love is War",
	"11101": "Barakamon",
	"11110": "One Punch Man",
	"11111": "K-On!",
}

// Encode turns answers into a code, one '0' (false) or '1' (true) per answer.
func Encode(answers []bool) string {
	var b strings.Builder
	for _, a := range answers {
		if a {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Lookup returns the recommended title for a code.
func Lookup(code string) (string, error) {
	title, ok := recommendations[code]
	if !ok {
		return "", &apperrors.ErrNoRecommendation{Code: code}
	}
	return title, nil
}

// Codes returns the number of mapped codes.
func Codes() int {
	return len(recommendations)
}
