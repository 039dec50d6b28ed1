package wordle

// Built-in five-letter corpus, a curated subset of the common Wordle
// lists. External word files can be supplied through LoadCorpus.
var defaultAnswers = []string{
	"about", "adore", "after", "again", "alarm", "alien", "apple", "arise",
	"armor", "aside", "audio", "badge", "baker", "beach", "began", "being",
	"birth", "black", "blade", "blame", "brain", "bread", "brick", "bride",
	"bring", "broke", "brown", "cabin", "cable", "candy", "cargo", "chain",
	"chair", "chalk", "charm", "chase", "cheek", "chess", "chief", "child",
	"claim", "clean", "clear", "climb", "clock", "cloud", "coast", "count",
	"crane", "crash", "cream", "crime", "crown", "dance", "death", "delay",
	"doubt", "dozen", "dream", "drink", "drive", "eagle", "early", "earth",
	"eight", "elbow", "empty", "enjoy", "enter", "equal", "error", "event",
	"every", "exact", "fancy", "field", "fight", "final", "flame", "flash",
	"float", "floor", "fluid", "focus", "force", "found", "frame", "fresh",
	"front", "fruit", "ghost", "giant", "given", "glass", "globe", "grace",
	"grade", "grain", "grand", "grant", "grape", "grass", "great", "green",
	"group", "guard", "happy", "heart", "heavy", "horse", "house", "human",
	"ideal", "image", "index", "inner", "input", "issue", "joint", "judge",
	"juice", "knife", "large", "laugh", "layer", "learn", "lemon", "level",
	"light", "limit", "local", "logic", "loose", "lucky", "lunch", "magic",
	"major", "march", "match", "metal", "might", "minor", "model", "money",
	"month", "moral", "mount", "mouse", "mouth", "music", "never", "night",
	"noise", "north", "novel", "nurse", "ocean", "offer", "order", "other",
	"owner", "paint", "panel", "paper", "party", "peace", "phase", "phone",
	"photo", "piano", "piece", "pilot", "pitch", "place", "plain", "plane",
	"plant", "plate", "point", "pound", "power", "press", "price", "pride",
	"prime", "print", "prize", "proof", "proud", "queen", "quick", "quiet",
	"radio", "raise", "range", "rapid", "ratio", "reach", "ready", "right",
	"river", "robot", "rough", "round", "route", "royal", "rural", "scale",
	"scene", "scope", "score", "sense", "serve", "seven", "shade", "shape",
	"share", "sharp", "sheep", "shelf", "shine", "shirt", "shore", "short",
	"sight", "silly", "since", "sixth", "skill", "sleep", "slice", "small",
	"smart", "smile", "smoke", "solid", "solve", "sound", "south", "space",
	"spare", "speak", "speed", "spend", "sport", "staff", "stage", "stand",
	"start", "state", "steam", "steel", "stick", "still", "stone", "store",
	"storm", "story", "style", "sugar", "sweet", "table", "taste", "teach",
	"thank", "theme", "there", "thing", "think", "third", "three", "tiger",
	"tight", "title", "today", "token", "total", "touch", "tower", "trace",
	"track", "trade", "train", "treat", "trial", "truck", "trust", "under",
	"union", "urban", "usage", "value", "video", "visit", "vital", "voice",
	"watch", "water", "wheel", "where", "which", "white", "whole", "woman",
	"world", "worth", "would", "wrist", "write", "wrong", "young",
}

// Guess-only words, allowed but never drawn as secrets.
var defaultExtraGuesses = []string{
	"adieu", "alert", "alter", "arose", "aster", "crate", "irate", "later",
	"least", "notes", "onset", "rates", "react", "salet", "serai", "slate",
	"stale", "stare", "steal", "tales", "tears", "tones",
}
