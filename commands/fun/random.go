package fun

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

const maxDiceSides = 100

var eightBallAnswers = []string{
	"It is certain.",
	"It is decidedly so.",
	"Without a doubt.",
	"Yes - definitely.",
	"You may rely on it.",
	"As I see it, yes.",
	"Most likely.",
	"Outlook good.",
	"Yes.",
	"Signs point to yes.",
	"Reply hazy, try again.",
	"Ask again later.",
	"Better not tell you now.",
	"Cannot predict now.",
	"Concentrate and ask again.",
	"Don't count on it.",
	"My reply is no.",
	"My sources say no.",
	"Outlook not so good.",
	"Very doubtful.",
}

// parseSides parses the dice side count argument.
// No argument means a regular six-sided die.
func parseSides(args []string) (int, error) {
	if len(args) == 0 {
		return 6, nil
	}

	sides, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.New("that's not a number")
	}

	if sides < 1 || sides > maxDiceSides {
		return 0, errors.Errorf("the side count must be between 1 and %v", maxDiceSides)
	}
	return sides, nil
}

// splitChoices splits a choose argument on commas, or on the word "or" if
// there are no commas. Empty options are dropped.
func splitChoices(raw string) []string {
	var parts []string
	if strings.Contains(raw, ",") {
		parts = strings.Split(raw, ",")
	} else {
		parts = strings.Split(raw, " or ")
	}

	choices := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			choices = append(choices, p)
		}
	}
	return choices
}

func flipCoin() string {
	if rand.Intn(2) == 1 {
		return "Tails"
	}
	return "Heads"
}

func rollDie(sides int) int {
	return rand.Intn(sides) + 1
}

func pick(choices []string) string {
	return choices[rand.Intn(len(choices))]
}

func (bot *Bot) coinflip(ctx *bcr.Context) (err error) {
	result := flipCoin()

	_, err = ctx.Send("", discord.Embed{
		Title:       "🪙 Coin flip",
		Description: fmt.Sprintf("The coin landed on **%v**!", result),
		Color:       common.ColourGold,
	})
	return
}

func (bot *Bot) roll(ctx *bcr.Context) (err error) {
	sides, perr := parseSides(ctx.Args)
	if perr != nil {
		_, err = ctx.Sendf("❌ %v\nUsage: `%vroll [sides]`", perr, ctx.Prefix)
		return
	}

	result := rollDie(sides)

	_, err = ctx.Send("", discord.Embed{
		Title:       "🎲 Dice roll",
		Description: fmt.Sprintf("Rolling a **d%v**...\n\nResult: **%v**", sides, result),
		Color:       bcr.ColourPurple,
	})
	return
}

func (bot *Bot) choose(ctx *bcr.Context) (err error) {
	choices := splitChoices(ctx.RawArgs)
	if len(choices) < 2 {
		_, err = ctx.Sendf("❌ Give me at least 2 options, separated by commas or \"or\"!")
		return
	}

	choice := pick(choices)

	_, err = ctx.Send("", discord.Embed{
		Title:       "🤔 I choose...",
		Description: "**" + choice + "**",
		Color:       common.ColourBlue,
		Footer: &discord.EmbedFooter{
			Text: "Options: " + strings.Join(choices, ", "),
		},
	})
	return
}

func (bot *Bot) eightBall(ctx *bcr.Context) (err error) {
	answer := pick(eightBallAnswers)

	_, err = ctx.Send("", discord.Embed{
		Title: "🎱 Magic 8-ball",
		Color: bcr.ColourPurple,
		Fields: []discord.EmbedField{
			{Name: "Question", Value: ctx.RawArgs},
			{Name: "Answer", Value: answer},
		},
	})
	return
}
