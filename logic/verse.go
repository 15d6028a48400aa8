package logic

import (
	"time"

	"github.com/WorkZen2025/workzen-app/models"
)

var dailyVerses = []models.Verse{
	{
		Verse:       "Matthew 11:28-30",
		Text:        "Come to me, all you who are weary and burdened, and I will give you rest. Take my yoke upon you and learn from me, for I am gentle and humble in heart, and you will find rest for your souls. For my yoke is easy and my burden is light.",
		Theme:       "Rest and Relief",
		Application: "When work feels overwhelming, remember that Christ invites you to find rest in Him.",
	},
	{
		Verse:       "Philippians 4:6-7",
		Text:        "Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God. And the peace of God, which transcends all understanding, will guard your hearts and your minds in Christ Jesus.",
		Theme:       "Anxiety and Peace",
		Application: "Before that stressful meeting, take a moment to pray and surrender your worries to God.",
	},
	{
		Verse:       "Isaiah 40:31",
		Text:        "But those who hope in the Lord will renew their strength. They will soar on wings like eagles; they will run and not grow weary, they will walk and not be faint.",
		Theme:       "Strength and Endurance",
		Application: "When you feel burned out, remember that God is your source of renewed strength.",
	},
	{
		Verse:       "1 Peter 5:7",
		Text:        "Cast all your anxiety on him because he cares for you.",
		Theme:       "Casting Burdens",
		Application: "Your workplace stress matters to God. He cares about your daily struggles.",
	},
	{
		Verse:       "Jeremiah 29:11",
		Text:        "For I know the plans I have for you, declares the Lord, plans to prosper you and not to harm you, to give you hope and a future.",
		Theme:       "Hope and Purpose",
		Application: "When career uncertainty causes stress, trust in God's good plans for your life.",
	},
	{
		Verse:       "2 Corinthians 12:9",
		Text:        "But he said to me, 'My grace is sufficient for you, for my power is made perfect in weakness.' Therefore I will boast all the more gladly about my weaknesses, so that Christ's power may rest on me.",
		Theme:       "Strength in Weakness",
		Application: "Your workplace challenges are opportunities for God's strength to shine through you.",
	},
	{
		Verse:       "Psalm 46:1-2",
		Text:        "God is our refuge and strength, an ever-present help in trouble. Therefore we will not fear, though the earth give way and the mountains fall into the heart of the sea.",
		Theme:       "God as Refuge",
		Application: "In workplace crises, God is your stable foundation when everything else feels uncertain.",
	},
}

// DailyVerse returns today's verse from the rotation
func DailyVerse() models.Verse {
	return verseForDate(time.Now())
}

func verseForDate(t time.Time) models.Verse {
	return dailyVerses[t.YearDay()%len(dailyVerses)]
}
