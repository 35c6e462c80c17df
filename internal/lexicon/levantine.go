package lexicon

// DefaultLevantine returns the built-in Levantine Arabic tables. The weights
// are calibrated against the production corpus; treat them as data, not
// something to re-derive.
func DefaultLevantine() Tables {
	return Tables{
		Version: "levantine-2024.2",
		Indicators: []WeightedTerm{
			// High-signal terms rarely seen outside Levantine text.
			{Term: "زلمة", Weight: 2},
			{Term: "هلق", Weight: 2},
			{Term: "هلأ", Weight: 2},
			{Term: "عنجد", Weight: 2},
			{Term: "شلون", Weight: 2},
			{Term: "مبارح", Weight: 2},
			{Term: "بلكي", Weight: 2},
			{Term: "دغري", Weight: 2},

			{Term: "يلا", Weight: 1},
			{Term: "شو", Weight: 1},
			{Term: "هيك", Weight: 1},
			{Term: "كتير", Weight: 1},
			{Term: "منيح", Weight: 1},
			{Term: "بدي", Weight: 1},
			{Term: "بدك", Weight: 1},
			{Term: "بدو", Weight: 1},
			{Term: "هاد", Weight: 1},
			{Term: "هاي", Weight: 1},
			{Term: "ليش", Weight: 1},
			{Term: "وين", Weight: 1},
			{Term: "تمام", Weight: 1},
			{Term: "خلص", Weight: 1},
			{Term: "يعني", Weight: 1},
			{Term: "لسا", Weight: 1},
			{Term: "لساتني", Weight: 1},
			{Term: "مو", Weight: 1},
			{Term: "مشان", Weight: 1},
			{Term: "تبع", Weight: 1},
			{Term: "جوا", Weight: 1},
			{Term: "برا", Weight: 1},
			{Term: "فوت", Weight: 1},
			{Term: "اطلع", Weight: 1},
			{Term: "انزل", Weight: 1},
			{Term: "طيب", Weight: 1},
			{Term: "ماشي", Weight: 1},
			{Term: "ولك", Weight: 1},
			{Term: "يا ريت", Weight: 1},
			{Term: "شوي", Weight: 1},
			{Term: "عالسريع", Weight: 1},
			{Term: "معليش", Weight: 1},
			{Term: "منشان", Weight: 1},
			{Term: "هونيك", Weight: 1},
			{Term: "لهون", Weight: 1},
		},
		Markers: []WeightedTerm{
			{Term: "والله", Weight: 1.5},
			{Term: "يا الله", Weight: 1.5},
			{Term: "حرام", Weight: 1.5},
			{Term: "يا حرام", Weight: 1.5},
			{Term: "يا حسرة", Weight: 1.5},
			{Term: "الله يعين", Weight: 1.5},
			{Term: "الله يرحمه", Weight: 1.5},
			{Term: "ما شاء الله", Weight: 1.5},
			{Term: "الحمد لله", Weight: 1.5},
			{Term: "يا سلام", Weight: 1.5},
			{Term: "الله يسعدك", Weight: 1.5},
			{Term: "مبسوط", Weight: 1.5},
			{Term: "زعلان", Weight: 1.5},
			{Term: "خايف", Weight: 1.5},
			{Term: "مخنوق", Weight: 1.5},
		},
		FunctionWords: []string{
			"في", "من", "على", "إلى", "عن", "هذا", "هذه",
			"التي", "الذي", "كان", "قال", "مع", "بعد", "قبل", "كل",
		},
		PlaceholderPatterns: []string{
			"subscribe to read",
			"premium content",
			"paywall",
			"sign in to continue",
			"register to continue",
			"اشترك الآن",
			"محتوى حصري للمشتركين",
			"سجل الدخول للمتابعة",
		},
	}
}
