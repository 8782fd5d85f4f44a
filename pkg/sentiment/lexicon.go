package sentiment

// polarity scores for words commonly found in task titles.
var polarity = map[string]float64{
	// favourable
	"good": 0.7, "great": 0.8, "excellent": 1.0, "awesome": 1.0, "nice": 0.6,
	"happy": 0.8, "fun": 0.3, "love": 0.5, "enjoy": 0.4, "celebrate": 0.5,
	"easy": 0.43, "quick": 0.33, "best": 1.0, "better": 0.5, "win": 0.8,
	"exciting": 0.3, "fantastic": 0.4, "wonderful": 1.0, "beautiful": 0.85,
	"calm": 0.3, "healthy": 0.5, "fresh": 0.3, "free": 0.4, "relax": 0.3,
	"success": 0.5, "successful": 0.75, "perfect": 1.0, "glad": 0.5,

	// unfavourable or urgent-sounding
	"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0, "worst": -1.0,
	"poor": -0.4, "wrong": -0.5, "broken": -0.4, "critical": -0.4, "urgent": -0.4,
	"urgently": -0.4, "asap": -0.4, "emergency": -0.5, "overdue": -0.5, "late": -0.3,
	"issue": -0.3, "issues": -0.3, "problem": -0.4, "problems": -0.4, "bug": -0.3,
	"bugs": -0.3, "error": -0.4, "errors": -0.4, "fail": -0.5, "failed": -0.5,
	"failing": -0.5, "failure": -0.6, "crash": -0.6, "outage": -0.6, "risk": -0.3,
	"sick": -0.7, "hard": -0.3, "difficult": -0.5, "angry": -0.5, "complaint": -0.4,
	"deadline": -0.2, "missing": -0.2, "stuck": -0.3, "blocker": -0.4, "blocked": -0.4,
	"annoying": -0.8, "painful": -0.7, "stressful": -0.6, "panic": -0.6, "leak": -0.4,
}

// intensifiers scale the polarity of the word that follows them.
var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "super": 1.3, "major": 1.3,
	"huge": 1.3, "highly": 1.3, "so": 1.2, "totally": 1.3, "severe": 1.5,
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "without": true, "dont": true,
	"don't": true, "isn't": true, "aren't": true, "won't": true, "can't": true,
	"didn't": true, "doesn't": true,
}
