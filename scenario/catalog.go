package scenario

import "strings"

// Built-in scenarios exercised against the live translator. Accessors hand
// out copies; these tables are never modified after init.

var positive = []Positive{
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_01",
			Name:  "Drink request",
			Input: "mata kiri bonna onnea",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "මට කිරි බොන්න ඕනෑ",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_02",
			Name:  "Watching TV",
			Input: "eya TV balanavaa",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "එයා TV බලනවා",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_03",
			Name:  "Coming outside",
			Input: "mama eliyata enawa",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "මම එලියට එනවා",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_04",
			Name:  "Question arrival",
			Input: "eya enne kavaddha?",
			Tags:  Tags{Category: "Greeting / request / response", Grammar: "Interrogative", Length: Short, Quality: Accuracy},
		},
		Expected: "එයා එන්නේ කවද්ද?",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_05",
			Name:  "Command sit",
			Input: "mehen idhaganna",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Imperative", Length: Short, Quality: Accuracy},
		},
		Expected: "මෙහෙන් ඉදගන්න",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_06",
			Name:  "Past action",
			Input: "mama kalin gedra giya",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Past tense", Length: Short, Quality: Accuracy},
		},
		Expected: "මම කලින් ගෙදර ගියා",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_07",
			Name:  "Future plan",
			Input: "api heta meet vemu",
			Tags:  Tags{Category: "Mixed Singlish + English", Grammar: "Future tense", Length: Short, Quality: Accuracy},
		},
		Expected: "අපි හෙට meet වෙමු",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_08",
			Name:  "Negative refusal",
			Input: "mata Enna baee",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Negation", Length: Short, Quality: Accuracy},
		},
		Expected: "මට එන්න බෑ",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_09",
			Name:  "Plural action",
			Input: "api okkoma eheta yamu",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Plural", Length: Short, Quality: Accuracy},
		},
		Expected: "අපි ඔක්කොම එහෙට යමු",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_10",
			Name:  "Greeting response",
			Input: "suba dahawalak!",
			Tags:  Tags{Category: "Greeting / request / response", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "සුබ දහවලක්!",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_11",
			Name:  "YouTube term",
			Input: "mata YouTube eke music video ekak balanna oonee",
			Tags:  Tags{Category: "Mixed Singlish + English", Grammar: "Simple sentence", Length: Medium, Quality: Accuracy},
		},
		Expected: "මට YouTube එකේ music video එකක් බලන්න ඕනෑ",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_12",
			Name:  "City name",
			Input: "mama Kandy giyaa",
			Tags:  Tags{Category: "Names / places", Grammar: "Past tense", Length: Short, Quality: Accuracy},
		},
		Expected: "මම Kandy ගියා",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_13",
			Name:  "Repeated words",
			Input: "issarahata issarahata",
			Tags:  Tags{Category: "Phrase pattern", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "ඉස්සරහට ඉස්සරහට",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_14",
			Name:  "Currency",
			Input: "mata Rs.2000 ewanna",
			Tags:  Tags{Category: "Numbers", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "මට Rs.2000 එවන්න",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_15",
			Name:  "Time",
			Input: " mama 9.50 AM pitath ennam",
			Tags:  Tags{Category: "Numbers", Grammar: "Future tense", Length: Short, Quality: Accuracy},
		},
		Expected: "මම 9.50 AM පිටත් එන්නම්",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_16",
			Name:  "Date",
			Input: "Marthu 25",
			Tags:  Tags{Category: "Numbers", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "මාර්තු 25",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_17",
			Name:  "Measurement",
			Input: "15kg haal mitiyak",
			Tags:  Tags{Category: "Numbers", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "15kg හාල් මිටියක්",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_18",
			Name:  "Medium conversation",
			Input: "mama adha nuwara yanawa enisa api heta hambemu machan",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Compound", Length: Medium, Quality: Accuracy},
		},
		Expected: "මම අද නුවර යනවා එනිසා අපි හෙට හම්බෙමු මචං",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_19",
			Name:  "Line break",
			Input: "mama panthiyata yanavaa\noyaa enawada?",
			Tags:  Tags{Category: "Formatting", Grammar: "Compound", Length: Medium, Quality: Formatting},
		},
		Expected: "මම පන්තියට යනවා\nඔයා එනවද?",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_20",
			Name:  "Complex sentence",
			Input: "poth tika kiyewvoth oyaata godak deval igena ganna puluwan",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Complex", Length: Medium, Quality: Accuracy},
		},
		Expected: "පොත් ටික කියෙව්වොත් ඔයාට ගොඩක් දේවල් ඉගෙන ගන්න පුළුවන්",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_21",
			Name:  "Polite ask",
			Input: "karunaakaralaa mata vathura ekak denna",
			Tags:  Tags{Category: "Requests", Grammar: "Imperative", Length: Medium, Quality: Accuracy},
		},
		Expected: "කරුණාකරලා මට වතුර එකක් දෙන්න",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_22",
			Name:  "Fear",
			Input: "mata thaniyama yanna baya hithenavaa",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Simple", Length: Short, Quality: Accuracy},
		},
		Expected: "මට තනියම යන්න බය හිතෙනවා",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_23",
			Name:  "Sleepy",
			Input: "re vedi vena thuru hitiya nisa mata nidhimathai",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Simple", Length: Medium, Quality: Accuracy},
		},
		Expected: "රෑ වැඩි වෙන තුරු හිටිය නිසා මට නිදිමතයි",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_24",
			Name:  "Phone call",
			Input: "mama gedara gihin call ekak gannam",
			Tags:  Tags{Category: "Mixed", Grammar: "Future", Length: Short, Quality: Accuracy},
		},
		Expected: "මම ගෙදර ගිහින් call එකක් ගන්නම්",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_Fun_25",
			Name:  "Paragraph conversation",
			Input: "api ada reatath kema order karamu. mata hariyata uyanna velavak thibune ne. oyaa kamathi deyak kiyanna. karunaakaralaa ikkamanata mata message ekak danna.",
			Tags:  Tags{Category: "Daily language usage", Grammar: "Paragraph / multiple sentences", Length: Long, Quality: Accuracy},
		},
		Expected: "අපි අද රෑටත් කෑම order කරමු. මට හරියට උයන්න වෙලාවක් තිබුණේ නෑ. ඔයා කැමති දෙයක් කියන්න. කරුණාකරලා ඉක්මනට මට message එකක් දන්න.",
	},
}

// Negative inputs have no known correct rendering. Neg_Fun_03 and
// Neg_Fun_04 document inputs the translator is known to mishandle.
var negative = []Negative{
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_01",
			Name:  "Joined words",
			Input: "adaticketnethda",
			Tags:  Tags{Category: "Typo", Grammar: "Simple", Length: Short, Quality: Robustness},
		},
	},
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_02",
			Name:  "Excess spaces",
			Input: "api      passe      balamu",
			Tags:  Tags{Category: "Formatting", Grammar: "Simple", Length: Short, Quality: Robustness},
		},
	},
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_03",
			Name:  "Slang overload",
			Input: "pattane mcn maru",
			Tags:  Tags{Category: "Slang", Grammar: "Simple", Length: Short, Quality: Robustness},
		},
		KnownWeakness: true,
	},
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_04",
			Name:  "Symbols",
			Input: "####@@@@****",
			Tags:  Tags{Category: "Formatting", Grammar: "Simple", Length: Short, Quality: Robustness},
		},
		KnownWeakness: true,
	},
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_05",
			Name:  "Mixed caps",
			Input: "KoHeDa InNe",
			Tags:  Tags{Category: "Typo", Grammar: "Simple", Length: Short, Quality: Robustness},
		},
	},
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_06",
			Name:  "Emoji",
			Input: "🚀🔥👌✨",
			Tags:  Tags{Category: "Formatting", Grammar: "Simple", Length: Short, Quality: Robustness},
		},
	},
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_07",
			Name:  "HTML text",
			Input: "<div style=\"color:red\"></div>",
			Tags:  Tags{Category: "Formatting", Grammar: "Simple", Length: Short, Quality: Robustness},
		},
	},
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_08",
			Name:  "Long nonsense",
			Input: strings.Repeat("z", 1000),
			Tags:  Tags{Category: "Stress", Grammar: "Simple", Length: Long, Quality: Robustness},
		},
	},
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_09",
			Name:  "Shortcut slang",
			Input: "idk y u late",
			Tags:  Tags{Category: "Slang", Grammar: "Simple", Length: Short, Quality: Robustness},
		},
	},
	{
		Scenario: Scenario{
			ID:    "Neg_Fun_10",
			Name:  "Empty",
			Input: "   ",
			Tags:  Tags{Category: "Empty", Grammar: "Simple", Length: Short, Quality: Robustness},
		},
	},
}

var interaction = []Interaction{
	{
		Scenario: Scenario{
			ID:    "Pos_UI_01",
			Name:  "Live character mapping",
			Input: "oyaa kohedha inne",
			Tags:  Tags{Category: "Real-time output", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "ඔයා කොහෙද ඉන්නේ",
	},
	{
		Scenario: Scenario{
			ID:    "Pos_UI_02",
			Name:  "Auto-complete trigger",
			Input: "subha rathriyak",
			Tags:  Tags{Category: "Real-time output", Grammar: "Simple sentence", Length: Short, Quality: Accuracy},
		},
		Expected: "සුභ රාත්‍රියක්",
	},
}
