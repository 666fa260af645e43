package fixtures

import (
	"time"

	"badmintonpro/internal/models"
)

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

// Reviews is the demo review dataset, keyed by the canonical product id.
var Reviews = []models.Review{
	{ID: "r-1-1", ProductID: "1", UserName: "John D.", AvatarColor: "bg-primary/20 text-primary", Verified: true, Rating: 5, CreatedAt: daysAgo(2),
		Text: "Incredible power on smashes. The control is slightly tricky at first, but once you get used to it, it's a beast on the court. Highly recommend for singles players."},
	{ID: "r-1-2", ProductID: "1", UserName: "Sarah L.", AvatarColor: "bg-purple-100 text-purple-600", Verified: true, Rating: 5, CreatedAt: daysAgo(7),
		Text: "The racket feels amazing, very stiff and responsive. The paint job looks even better in person. Delivery was super fast too!"},
	{ID: "r-1-3", ProductID: "1", UserName: "Mike K.", AvatarColor: "bg-green-100 text-green-600", Verified: true, Rating: 5, CreatedAt: daysAgo(14),
		Text: "Upgrade from the Astrox 88D. Definitely feels heavier on the head but the smashes are noticeably more powerful. Great service from BadmintonPro."},
	{ID: "r-2-1", ProductID: "2", UserName: "Alex W.", AvatarColor: "bg-blue-100 text-blue-600", Verified: true, Rating: 5, CreatedAt: daysAgo(3),
		Text: "Victor's best racket for smashing! The head-heavy balance gives incredible power. Perfect for attacking players."},
	{ID: "r-2-2", ProductID: "2", UserName: "Chen Wei", AvatarColor: "bg-orange-100 text-orange-600", Verified: true, Rating: 4, CreatedAt: daysAgo(7),
		Text: "重头设计非常适合杀球，力量感十足。价格也很合理，推荐给进攻型选手。"},
	{ID: "r-3-1", ProductID: "3", UserName: "Emily R.", AvatarColor: "bg-pink-100 text-pink-600", Verified: true, Rating: 5, CreatedAt: daysAgo(1),
		Text: "Best badminton shoes I've ever owned! The cushioning is incredible - no more knee pain after long matches. Worth every penny."},
	{ID: "r-3-2", ProductID: "3", UserName: "David K.", AvatarColor: "bg-blue-100 text-blue-600", Verified: true, Rating: 4, CreatedAt: daysAgo(5),
		Text: "Excellent grip on the court. Took a few sessions to break in but now they're super comfortable. True to size."},
	{ID: "r-4-1", ProductID: "4", UserName: "James P.", AvatarColor: "bg-green-100 text-green-600", Verified: true, Rating: 5, CreatedAt: daysAgo(1),
		Text: "Tournament quality shuttles at a reasonable price. Flight is consistent and they last longer than most feather shuttles. Our club now orders these exclusively."},
	{ID: "r-4-2", ProductID: "4", UserName: "Wang Li", AvatarColor: "bg-orange-100 text-orange-600", Verified: true, Rating: 5, CreatedAt: daysAgo(4),
		Text: "非常好的羽毛球！飞行稳定，耐用度也不错。比赛训练都很合适。"},
	{ID: "r-5-1", ProductID: "5", UserName: "Zhang Ming", AvatarColor: "bg-primary/20 text-primary", Verified: true, Rating: 5, CreatedAt: daysAgo(2),
		Text: "李宁的这款球拍非常全面，攻守兼备。碳纤维材质手感极佳，值得推荐！"},
	{ID: "r-5-2", ProductID: "5", UserName: "Ryan T.", AvatarColor: "bg-purple-100 text-purple-600", Verified: true, Rating: 4, CreatedAt: daysAgo(7),
		Text: "Great all-round racket from Li-Ning. Not as head-heavy as the Yonex Astrox series but offers better control for defensive play."},
	{ID: "r-6-1", ProductID: "6", UserName: "Sophie H.", AvatarColor: "bg-pink-100 text-pink-600", Verified: true, Rating: 5, CreatedAt: daysAgo(3),
		Text: "So light and fast! Perfect for quick reactions at the net. The 5U weight really makes a difference in fast doubles games."},
	{ID: "r-7-1", ProductID: "7", UserName: "Andrew Z.", AvatarColor: "bg-primary/20 text-primary", Verified: true, Rating: 5, CreatedAt: daysAgo(1),
		Text: "The precision and control on this racket is unmatched. Perfect for placing shots exactly where you want them. Worth every dollar!"},
	{ID: "r-7-2", ProductID: "7", UserName: "Rachel K.", AvatarColor: "bg-purple-100 text-purple-600", Verified: true, Rating: 5, CreatedAt: daysAgo(3),
		Text: "Best racket for all-round play. Great balance between power and control. The even-balance design is perfect for my playing style."},
	{ID: "r-8-1", ProductID: "8", UserName: "Brian C.", AvatarColor: "bg-blue-100 text-blue-600", Verified: true, Rating: 5, CreatedAt: daysAgo(4),
		Text: "Victor's response to the Nanoflare series. Super quick racket with good punch. The metallic finish looks stunning!"},
	{ID: "r-9-1", ProductID: "9", UserName: "Amanda G.", AvatarColor: "bg-purple-100 text-purple-600", Verified: true, Rating: 5, CreatedAt: daysAgo(2),
		Text: "Love the blue color! Great grip on court and excellent ankle support. Perfect for intense matches. Very comfortable right out of the box."},
	{ID: "r-10-1", ProductID: "10", UserName: "Nancy L.", AvatarColor: "bg-pink-100 text-pink-600", Verified: true, Rating: 4, CreatedAt: daysAgo(5),
		Text: "Nice breathable fabric, keeps me cool during long matches. True to size and the color hasn't faded after multiple washes."},
	{ID: "r-11-1", ProductID: "11", UserName: "Tim H.", AvatarColor: "bg-green-100 text-green-600", Verified: true, Rating: 5, CreatedAt: daysAgo(1),
		Text: "Best grip tape I've used! Absorbs sweat really well and lasts longer than the Yonex AC102. Great value for money."},
	{ID: "r-12-1", ProductID: "12", UserName: "Michelle T.", AvatarColor: "bg-pink-100 text-pink-600", Verified: true, Rating: 5, CreatedAt: daysAgo(2),
		Text: "Super lightweight and comfortable! The cushioning system is amazing - feels like walking on clouds. Great for all-day tournaments."},
	{ID: "r-13-1", ProductID: "13", UserName: "Karen W.", AvatarColor: "bg-purple-100 text-purple-600", Verified: true, Rating: 4, CreatedAt: daysAgo(3),
		Text: "Love the cooling technology! Stays dry even during intense matches. Fits well and looks professional."},
}

// AvatarColors is the palette new reviews draw from.
var AvatarColors = []string{
	"bg-blue-100 text-blue-600",
	"bg-purple-100 text-purple-600",
	"bg-green-100 text-green-600",
	"bg-orange-100 text-orange-600",
	"bg-pink-100 text-pink-600",
	"bg-primary/20 text-primary",
}
