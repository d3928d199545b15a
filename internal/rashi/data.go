package rashi

type periodData struct {
	texts  []string
	colors []string
	stats  Stats
}

type rashiData struct {
	daily   periodData
	weekly  periodData
	monthly periodData
	yearly  periodData
}

// predictions carries the reading pool per rashi. Daily and weekly texts
// rotate with the calendar; yearly is a single reading.
var predictions = map[string]rashiData{
	"mesha": {
		daily: periodData{
			texts: []string{
				"Today brings new opportunities. Your leadership qualities will help you succeed.",
				"A favorable day for starting new projects. Your energy is high.",
				"Financial gains are indicated. Trust your instincts today.",
				"Family time will bring happiness. Resolve conflicts peacefully.",
				"Your communication skills will shine today.",
			},
			colors: []string{"Red", "Orange", "Maroon"},
			stats:  Stats{Health: 85, Wealth: 80, Family: 75, Love: 78, Career: 82},
		},
		weekly: periodData{
			texts: []string{
				"This week favors new beginnings. Take initiative in all matters.",
				"Career growth is highlighted. Professional opportunities arise.",
				"Financial stability improves. Focus on savings and investments.",
			},
			colors: []string{"Red", "Orange"},
			stats:  Stats{Health: 82, Wealth: 84, Family: 80, Love: 83, Career: 86},
		},
		monthly: periodData{
			texts: []string{
				"This month brings transformation. Embrace changes positively.",
				"Major career shifts are possible. Stay prepared.",
				"Family harmony increases. Home improvements likely.",
			},
			colors: []string{"Red", "Orange", "Maroon"},
			stats:  Stats{Health: 84, Wealth: 88, Family: 82, Love: 85, Career: 88},
		},
		yearly: periodData{
			texts:  []string{"A year of significant growth for Mesha. Career advancements, financial gains, and relationship developments are highlighted."},
			colors: []string{"Red", "Orange", "Maroon"},
			stats:  Stats{Health: 86, Wealth: 90, Family: 84, Love: 86, Career: 90},
		},
	},
	"vrishabha": {
		daily: periodData{
			texts: []string{
				"Patience rewards you today. Steady effort brings steady gains.",
				"A good day for financial planning. Review your investments.",
				"Comfort and stability at home bring contentment.",
				"Your practical approach solves a lingering problem.",
			},
			colors: []string{"Green", "White"},
			stats:  Stats{Health: 80, Wealth: 85, Family: 84, Love: 80, Career: 78},
		},
		weekly: periodData{
			texts: []string{
				"This week favors consolidation. Strengthen what you have built.",
				"Property and financial matters move in your favor.",
			},
			colors: []string{"Green", "Pink"},
			stats:  Stats{Health: 82, Wealth: 86, Family: 83, Love: 81, Career: 80},
		},
		monthly: periodData{
			texts: []string{
				"A stable month. Savings grow and family bonds deepen.",
				"Slow but certain professional progress this month.",
			},
			colors: []string{"Green", "White"},
			stats:  Stats{Health: 83, Wealth: 87, Family: 85, Love: 82, Career: 81},
		},
		yearly: periodData{
			texts:  []string{"A year of material consolidation for Vrishabha. Financial security strengthens and domestic life flourishes."},
			colors: []string{"Green", "White", "Pink"},
			stats:  Stats{Health: 84, Wealth: 88, Family: 86, Love: 83, Career: 82},
		},
	},
	"mithuna": {
		daily: periodData{
			texts: []string{
				"Your wit opens doors today. Conversations lead to opportunity.",
				"A busy day with many small wins. Keep your schedule flexible.",
				"New information changes your plans for the better.",
				"Short journeys bring pleasant surprises.",
			},
			colors: []string{"Yellow", "Green"},
			stats:  Stats{Health: 78, Wealth: 76, Family: 77, Love: 80, Career: 83},
		},
		weekly: periodData{
			texts: []string{
				"Communication is your strength this week. Negotiate confidently.",
				"Learning and short travel are favored this week.",
			},
			colors: []string{"Yellow", "Light Green"},
			stats:  Stats{Health: 79, Wealth: 78, Family: 78, Love: 81, Career: 84},
		},
		monthly: periodData{
			texts: []string{
				"A month of connections. Networking brings career momentum.",
				"Siblings and friends play a helpful role this month.",
			},
			colors: []string{"Yellow", "Green"},
			stats:  Stats{Health: 80, Wealth: 80, Family: 80, Love: 82, Career: 85},
		},
		yearly: periodData{
			texts:  []string{"A year of intellectual expansion for Mithuna. New skills, new contacts, and fresh professional directions."},
			colors: []string{"Yellow", "Green"},
			stats:  Stats{Health: 81, Wealth: 82, Family: 80, Love: 83, Career: 87},
		},
	},
	"karka": {
		daily: periodData{
			texts: []string{
				"Home matters take priority today, and resolve warmly.",
				"Your intuition is sharp. Trust your first impression.",
				"Emotional clarity brings a needed decision within reach.",
				"Care for your health today. Rest restores your strength.",
			},
			colors: []string{"White", "Silver"},
			stats:  Stats{Health: 76, Wealth: 78, Family: 88, Love: 85, Career: 75},
		},
		weekly: periodData{
			texts: []string{
				"Family happiness defines this week. Host or visit loved ones.",
				"A nurturing week. Support given returns to you doubled.",
			},
			colors: []string{"White", "Cream"},
			stats:  Stats{Health: 78, Wealth: 79, Family: 89, Love: 86, Career: 77},
		},
		monthly: periodData{
			texts: []string{
				"Domestic projects succeed this month. Consider home improvements.",
				"Emotional bonds deepen. An old relationship renews itself.",
			},
			colors: []string{"White", "Silver"},
			stats:  Stats{Health: 79, Wealth: 80, Family: 90, Love: 87, Career: 78},
		},
		yearly: periodData{
			texts:  []string{"A year of emotional fulfilment for Karka. Family milestones and domestic stability take centre stage."},
			colors: []string{"White", "Silver", "Cream"},
			stats:  Stats{Health: 80, Wealth: 82, Family: 91, Love: 88, Career: 79},
		},
	},
	"simha": {
		daily: periodData{
			texts: []string{
				"Your confidence draws attention today. Lead from the front.",
				"Recognition at work is likely. Present your ideas boldly.",
				"Generosity today builds alliances for tomorrow.",
				"Creative work shines. Give your talents an audience.",
			},
			colors: []string{"Gold", "Orange"},
			stats:  Stats{Health: 84, Wealth: 82, Family: 78, Love: 80, Career: 88},
		},
		weekly: periodData{
			texts: []string{
				"Authority suits you this week. Take charge of stalled projects.",
				"A week of visibility. Your efforts finally get noticed.",
			},
			colors: []string{"Gold", "Red"},
			stats:  Stats{Health: 85, Wealth: 83, Family: 79, Love: 81, Career: 89},
		},
		monthly: periodData{
			texts: []string{
				"Career dominates the month, and rewards ambition handsomely.",
				"A promotion or public acknowledgement is within reach.",
			},
			colors: []string{"Gold", "Orange"},
			stats:  Stats{Health: 86, Wealth: 85, Family: 80, Love: 82, Career: 90},
		},
		yearly: periodData{
			texts:  []string{"A year of achievement for Simha. Professional standing rises and long-held ambitions bear fruit."},
			colors: []string{"Gold", "Orange", "Red"},
			stats:  Stats{Health: 87, Wealth: 87, Family: 81, Love: 83, Career: 92},
		},
	},
	"kanya": {
		daily: periodData{
			texts: []string{
				"Attention to detail pays off today. Review before you submit.",
				"A disciplined day brings quiet satisfaction.",
				"Health routines show results. Stay consistent.",
				"Helping a colleague earns lasting goodwill.",
			},
			colors: []string{"Green", "White"},
			stats:  Stats{Health: 86, Wealth: 79, Family: 80, Love: 76, Career: 84},
		},
		weekly: periodData{
			texts: []string{
				"Organization is the theme. Clear backlogs and plan ahead.",
				"A productive week for analytical and service work.",
			},
			colors: []string{"Green", "Grey"},
			stats:  Stats{Health: 87, Wealth: 80, Family: 81, Love: 77, Career: 85},
		},
		monthly: periodData{
			texts: []string{
				"Steady improvement across work and health this month.",
				"Routine refinements compound into real progress.",
			},
			colors: []string{"Green", "White"},
			stats:  Stats{Health: 88, Wealth: 82, Family: 82, Love: 78, Career: 86},
		},
		yearly: periodData{
			texts:  []string{"A year of refinement for Kanya. Methodical effort brings professional respect and robust health."},
			colors: []string{"Green", "White", "Grey"},
			stats:  Stats{Health: 89, Wealth: 84, Family: 83, Love: 79, Career: 87},
		},
	},
	"tula": {
		daily: periodData{
			texts: []string{
				"Balance is your gift today. Mediate and both sides win.",
				"Partnerships flourish. Collaborate rather than compete.",
				"Aesthetic pursuits bring joy. Surround yourself with beauty.",
				"A social invitation opens an unexpected door.",
			},
			colors: []string{"Blue", "White"},
			stats:  Stats{Health: 79, Wealth: 81, Family: 82, Love: 87, Career: 80},
		},
		weekly: periodData{
			texts: []string{
				"Relationships take focus this week, and they reward it.",
				"Agreements signed this week hold strong.",
			},
			colors: []string{"Blue", "Pink"},
			stats:  Stats{Health: 80, Wealth: 82, Family: 83, Love: 88, Career: 81},
		},
		monthly: periodData{
			texts: []string{
				"Harmony prevails this month in home and partnership alike.",
				"Joint ventures and alliances are strongly favored.",
			},
			colors: []string{"Blue", "White"},
			stats:  Stats{Health: 81, Wealth: 84, Family: 84, Love: 89, Career: 82},
		},
		yearly: periodData{
			texts:  []string{"A year of partnership for Tula. Marriages, alliances, and collaborations define its successes."},
			colors: []string{"Blue", "White", "Pink"},
			stats:  Stats{Health: 82, Wealth: 85, Family: 85, Love: 90, Career: 83},
		},
	},
	"vrishchika": {
		daily: periodData{
			texts: []string{
				"Your determination cuts through obstacles today.",
				"A secret comes to light, and it works in your favor.",
				"Focused research yields valuable answers.",
				"Transformative choices beckon. Choose with conviction.",
			},
			colors: []string{"Maroon", "Red"},
			stats:  Stats{Health: 81, Wealth: 83, Family: 76, Love: 82, Career: 84},
		},
		weekly: periodData{
			texts: []string{
				"A week of depth. Finish what others abandon.",
				"Shared finances and investments move favorably.",
			},
			colors: []string{"Maroon", "Black"},
			stats:  Stats{Health: 82, Wealth: 85, Family: 77, Love: 83, Career: 85},
		},
		monthly: periodData{
			texts: []string{
				"A month of regeneration. Let go of what no longer serves.",
				"Inheritance or joint-asset matters resolve this month.",
			},
			colors: []string{"Maroon", "Red"},
			stats:  Stats{Health: 83, Wealth: 86, Family: 78, Love: 84, Career: 86},
		},
		yearly: periodData{
			texts:  []string{"A year of transformation for Vrishchika. Old patterns end and stronger foundations replace them."},
			colors: []string{"Maroon", "Red", "Black"},
			stats:  Stats{Health: 84, Wealth: 88, Family: 80, Love: 85, Career: 87},
		},
	},
	"dhanu": {
		daily: periodData{
			texts: []string{
				"Your optimism will guide you to success today. New adventures await.",
				"Learning new skills will be fruitful. Embrace knowledge.",
				"Financial opportunities arise through unexpected sources.",
				"Travel brings unexpected luck and new connections.",
				"Your philosophical nature helps solve complex problems.",
			},
			colors: []string{"Orange", "Yellow", "Gold"},
			stats:  Stats{Health: 82, Wealth: 78, Family: 80, Love: 84, Career: 80},
		},
		weekly: periodData{
			texts: []string{
				"A week of expansion. Say yes to new horizons.",
				"Higher learning and long journeys are favored.",
			},
			colors: []string{"Orange", "Yellow"},
			stats:  Stats{Health: 83, Wealth: 80, Family: 81, Love: 85, Career: 82},
		},
		monthly: periodData{
			texts: []string{
				"Fortune favors the bold this month. Take the leap.",
				"Teachers and mentors open doors this month.",
			},
			colors: []string{"Orange", "Gold"},
			stats:  Stats{Health: 84, Wealth: 82, Family: 82, Love: 86, Career: 83},
		},
		yearly: periodData{
			texts:  []string{"A year of expansion for Dhanu. Travel, study, and fortunate meetings widen every horizon."},
			colors: []string{"Orange", "Yellow", "Gold"},
			stats:  Stats{Health: 85, Wealth: 84, Family: 83, Love: 87, Career: 85},
		},
	},
	"makara": {
		daily: periodData{
			texts: []string{
				"Discipline pays today. Long-term plans advance a solid step.",
				"Responsibility brings respect. Shoulder it gladly.",
				"Elders offer advice worth taking today.",
				"A slow start, but the day ends in accomplishment.",
			},
			colors: []string{"Black", "Dark Blue"},
			stats:  Stats{Health: 77, Wealth: 84, Family: 79, Love: 74, Career: 88},
		},
		weekly: periodData{
			texts: []string{
				"A week of structure. Build patiently and build to last.",
				"Professional duties dominate, and reward diligence.",
			},
			colors: []string{"Black", "Grey"},
			stats:  Stats{Health: 78, Wealth: 85, Family: 80, Love: 75, Career: 89},
		},
		monthly: periodData{
			texts: []string{
				"Career foundations strengthen markedly this month.",
				"Authority figures support your ambitions this month.",
			},
			colors: []string{"Black", "Dark Blue"},
			stats:  Stats{Health: 79, Wealth: 86, Family: 81, Love: 76, Career: 90},
		},
		yearly: periodData{
			texts:  []string{"A year of ascent for Makara. Persistent effort converts into position, property, and standing."},
			colors: []string{"Black", "Dark Blue", "Grey"},
			stats:  Stats{Health: 80, Wealth: 88, Family: 82, Love: 78, Career: 92},
		},
	},
	"kumbha": {
		daily: periodData{
			texts: []string{
				"Original thinking sets you apart today. Share your ideas.",
				"Friends prove their worth. Community efforts succeed.",
				"Technology works in your favor today.",
				"An unconventional approach solves a conventional problem.",
			},
			colors: []string{"Blue", "Purple"},
			stats:  Stats{Health: 80, Wealth: 77, Family: 76, Love: 79, Career: 85},
		},
		weekly: periodData{
			texts: []string{
				"A week of innovation. Future-facing plans gain traction.",
				"Group endeavors and networks bring opportunity.",
			},
			colors: []string{"Blue", "Electric Blue"},
			stats:  Stats{Health: 81, Wealth: 79, Family: 77, Love: 80, Career: 86},
		},
		monthly: periodData{
			texts: []string{
				"Social circles expand this month, and with them your reach.",
				"A long-held wish moves toward fulfilment this month.",
			},
			colors: []string{"Blue", "Purple"},
			stats:  Stats{Health: 82, Wealth: 81, Family: 78, Love: 81, Career: 87},
		},
		yearly: periodData{
			texts:  []string{"A year of vision for Kumbha. Ideas ahead of their time find their moment, and allies to back them."},
			colors: []string{"Blue", "Purple", "Electric Blue"},
			stats:  Stats{Health: 83, Wealth: 83, Family: 80, Love: 82, Career: 89},
		},
	},
	"meena": {
		daily: periodData{
			texts: []string{
				"Compassion guides you well today. Kindness returns manyfold.",
				"Creative imagination runs high. Capture your ideas.",
				"Spiritual practice brings deep calm today.",
				"Dreams carry meaning today. Reflect before acting.",
			},
			colors: []string{"Sea Green", "Yellow"},
			stats:  Stats{Health: 78, Wealth: 75, Family: 83, Love: 86, Career: 74},
		},
		weekly: periodData{
			texts: []string{
				"An intuitive week. Quiet reflection reveals the right path.",
				"Artistic and charitable pursuits are blessed this week.",
			},
			colors: []string{"Sea Green", "White"},
			stats:  Stats{Health: 79, Wealth: 77, Family: 84, Love: 87, Career: 76},
		},
		monthly: periodData{
			texts: []string{
				"A gentle month. Heal, create, and reconnect.",
				"Faith and patience bring an unexpected blessing this month.",
			},
			colors: []string{"Sea Green", "Yellow"},
			stats:  Stats{Health: 80, Wealth: 79, Family: 85, Love: 88, Career: 77},
		},
		yearly: periodData{
			texts:  []string{"A year of grace for Meena. Inner growth, artistic success, and deepened relationships flow together."},
			colors: []string{"Sea Green", "Yellow", "White"},
			stats:  Stats{Health: 82, Wealth: 81, Family: 86, Love: 90, Career: 79},
		},
	},
}
