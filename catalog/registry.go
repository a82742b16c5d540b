package catalog

import (
	"fmt"
	"math"
)

// Default returns the built-in catalog: the complete alphabet of known
// compression-algorithm components, one entry per primitive, grouped by
// category in fixed enumeration order.
//
// The built-in registry is static data validated by New; a validation
// failure here is a programmer error in the registry itself, so Default
// panics rather than returning an error the caller could do nothing with.
func Default() *Catalog {
	cat, err := New(WithComponents(builtin()...))
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in registry is invalid: %v", err))
	}

	return cat
}

// builtin assembles the registry in category order. Declaration order
// within each group is stable: it fixes enumeration output order.
func builtin() []Component {
	groups := [][]Component{
		entropyMeasures(),
		transforms(),
		predictors(),
		dictionaryMethods(),
		entropyCoders(),
		runLengthEncoders(),
		contextModels(),
		filters(),
		integerCoders(),
	}

	var all []Component
	for _, g := range groups {
		all = append(all, g...)
	}

	return all
}

// intRange returns the integers [lo, hi] as candidate values.
func intRange(lo, hi int) []any {
	out := make([]any, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}

	return out
}

// entropyMeasures - information-theoretic foundations (stage 0).
func entropyMeasures() []Component {
	return []Component{
		{
			Category:     EntropyMeasure,
			Name:         "Shannon Entropy",
			FormulaLaTeX: `H(X) = -\sum_{i=1}^{n} p(x_i) \log_2 p(x_i)`,
			FormulaASCII: "H(X) = -SUM(p(x_i) * log2(p(x_i))) for i=1 to n",
			Description:  "Fundamental measure of information content; theoretical minimum bits per symbol",
			Parameters: map[string]string{
				"n":      "alphabet size",
				"p(x_i)": "probability of symbol i",
			},
			ParamRanges: []ParamRange{
				{Name: "base", Values: []any{2, "e", 10}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(n)",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
		{
			Category:     EntropyMeasure,
			Name:         "Conditional Entropy",
			FormulaLaTeX: `H(X|Y) = -\sum_{y} p(y) \sum_{x} p(x|y) \log_2 p(x|y)`,
			FormulaASCII: "H(X|Y) = -SUM_y(p(y) * SUM_x(p(x|y) * log2(p(x|y))))",
			Description:  "Expected entropy of X given knowledge of Y; basis for context modeling",
			Parameters: map[string]string{
				"X": "target variable",
				"Y": "conditioning variable",
			},
			TimeComplexity:  "O(|X| * |Y|)",
			SpaceComplexity: "O(|X| * |Y|)",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
		{
			Category:     EntropyMeasure,
			Name:         "Mutual Information",
			FormulaLaTeX: `I(X;Y) = H(X) - H(X|Y) = \sum_{x,y} p(x,y) \log_2 \frac{p(x,y)}{p(x)p(y)}`,
			FormulaASCII: "I(X;Y) = H(X) - H(X|Y) = SUM(p(x,y) * log2(p(x,y) / (p(x)*p(y))))",
			Description:  "Information shared between two variables; guides context selection",
			Parameters: map[string]string{
				"X": "first variable",
				"Y": "second variable",
			},
			TimeComplexity:  "O(|X| * |Y|)",
			SpaceComplexity: "O(|X| * |Y|)",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
		{
			Category:     EntropyMeasure,
			Name:         "Kolmogorov Complexity",
			FormulaLaTeX: `K(x) = \min\{|p| : U(p) = x\}`,
			FormulaASCII: "K(x) = min{|p| : U(p) = x} (length of shortest program)",
			Description:  "Theoretical minimum description length; incomputable but guides algorithm design",
			Parameters: map[string]string{
				"U": "universal Turing machine",
				"p": "program",
			},
			TimeComplexity:  "Incomputable",
			SpaceComplexity: "Incomputable",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
		{
			Category:     EntropyMeasure,
			Name:         "Rényi Entropy",
			FormulaLaTeX: `H_\alpha(X) = \frac{1}{1-\alpha} \log_2 \sum_{i=1}^{n} p_i^\alpha`,
			FormulaASCII: "H_alpha(X) = (1/(1-alpha)) * log2(SUM(p_i^alpha))",
			Description:  "Generalized entropy; alpha=1 gives Shannon entropy, alpha=0 gives Hartley entropy",
			Parameters: map[string]string{
				"alpha": "order parameter (α ≥ 0, α ≠ 1)",
			},
			ParamRanges: []ParamRange{
				{Name: "alpha", Values: []any{0, 0.5, 2, math.Inf(1)}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(n)",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
	}
}

// transforms - reversible data transformations (stage 1, MTF at stage 2).
func transforms() []Component {
	return []Component{
		{
			Category:     Transform,
			Name:         "Burrows-Wheeler Transform",
			FormulaLaTeX: `BWT(s) = L \text{ where } M = \text{sort}(\text{rotations}(s)), L = \text{last\_column}(M)`,
			FormulaASCII: "BWT(s) = last_column(sort(all_rotations(s)))",
			Description:  "Reversible transform that groups similar contexts together; basis for bzip2",
			Parameters: map[string]string{
				"s": "input string",
			},
			TimeComplexity:  "O(n log n)",
			SpaceComplexity: "O(n)",
			Stages:          []Stage{StageTransform},
			Lossless:        true,
		},
		{
			Category:     Transform,
			Name:         "Move-to-Front Transform",
			FormulaLaTeX: `MTF(s_i) = \text{position of } s_i \text{ in list } L; \text{ move } s_i \text{ to front}`,
			FormulaASCII: "MTF(s_i) = index_of(s_i, L); then move s_i to L[0]",
			Description:  "Exploits locality by outputting small numbers for recently-seen symbols",
			Parameters: map[string]string{
				"alphabet_size": "size of symbol alphabet",
			},
			ParamRanges: []ParamRange{
				{Name: "alphabet_size", Values: []any{256, 65536}},
			},
			TimeComplexity:  "O(n * |Σ|)",
			SpaceComplexity: "O(|Σ|)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
			Prerequisites:   []string{"Burrows-Wheeler Transform"},
		},
		{
			Category:     Transform,
			Name:         "Discrete Cosine Transform",
			FormulaLaTeX: `X_k = \sum_{n=0}^{N-1} x_n \cos\left[\frac{\pi}{N}\left(n+\frac{1}{2}\right)k\right]`,
			FormulaASCII: "X_k = SUM(x_n * cos(pi/N * (n + 0.5) * k)) for n=0 to N-1",
			Description:  "Frequency-domain transform; used in JPEG (lossy variant exists)",
			Parameters: map[string]string{
				"N": "block size",
			},
			ParamRanges: []ParamRange{
				{Name: "N", Values: []any{8, 16, 32}},
			},
			TimeComplexity:  "O(n log n)",
			SpaceComplexity: "O(n)",
			Stages:          []Stage{StageTransform},
			// DCT itself is lossless; quantization makes it lossy.
			Lossless: true,
		},
		{
			Category:     Transform,
			Name:         "Delta Encoding",
			FormulaLaTeX: `\Delta_i = x_i - x_{i-1}, \quad x_0' = x_0`,
			FormulaASCII: "delta_i = x_i - x_{i-1}; x_0' = x_0",
			Description:  "Stores differences between consecutive values; effective for sorted/smooth data",
			Parameters: map[string]string{
				"order": "delta order (1=first difference, 2=second difference)",
			},
			ParamRanges: []ParamRange{
				{Name: "order", Values: []any{1, 2, 3}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageTransform},
			Lossless:        true,
		},
		{
			Category:        Transform,
			Name:            "XOR Delta",
			FormulaLaTeX:    `d_i = x_i \oplus x_{i-1}`,
			FormulaASCII:    "d_i = x_i XOR x_{i-1}",
			Description:     "Bitwise delta; preserves structure in binary data with similar consecutive values",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageTransform},
			Lossless:        true,
		},
		{
			Category:     Transform,
			Name:         "Integer Wavelet Transform (Lifting)",
			FormulaLaTeX: `d_j[n] = x[2n+1] - \lfloor(x[2n] + x[2n+2])/2\rfloor; \quad s_j[n] = x[2n] + \lfloor d_j[n]/4 \rfloor`,
			FormulaASCII: "d_j[n] = x[2n+1] - floor((x[2n] + x[2n+2])/2); s_j[n] = x[2n] + floor(d_j[n]/4)",
			Description:  "Lossless wavelet via integer lifting scheme; used in JPEG 2000 lossless mode",
			Parameters: map[string]string{
				"levels": "decomposition levels",
			},
			ParamRanges: []ParamRange{
				{Name: "levels", Values: []any{1, 2, 3, 4}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(n)",
			Stages:          []Stage{StageTransform},
			Lossless:        true,
		},
		{
			Category:     Transform,
			Name:         "Byte Pair Encoding (Transform)",
			FormulaLaTeX: `BPE(s) = \text{replace most frequent pair } (a,b) \text{ with new symbol } c`,
			FormulaASCII: "BPE(s) = iteratively_replace(most_frequent_pair, new_symbol)",
			Description:  "Iteratively replaces frequent byte pairs; creates implicit dictionary",
			Parameters: map[string]string{
				"max_iterations": "maximum replacement iterations",
			},
			ParamRanges: []ParamRange{
				{Name: "max_iterations", Values: []any{100, 1000, 10000}},
			},
			TimeComplexity:  "O(n * iterations)",
			SpaceComplexity: "O(|vocab|)",
			Stages:          []Stage{StageTransform},
			Lossless:        true,
		},
	}
}

// predictors - statistical modeling and prediction (stage 2 mostly).
func predictors() []Component {
	return []Component{
		{
			Category:     Predictor,
			Name:         "Order-N Markov Predictor",
			FormulaLaTeX: `P(x_i | x_{i-1}, ..., x_{i-n}) = \frac{C(x_{i-n}...x_i)}{C(x_{i-n}...x_{i-1})}`,
			FormulaASCII: "P(x_i | context) = count(context + x_i) / count(context)",
			Description:  "Predicts next symbol based on preceding n symbols; basis for PPM",
			Parameters: map[string]string{
				"order": "context length n",
			},
			ParamRanges: []ParamRange{
				{Name: "order", Values: []any{0, 1, 2, 3, 4, 5, 6}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(|Σ|^order)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
		},
		{
			Category:     Predictor,
			Name:         "Prediction by Partial Matching (PPM)",
			FormulaLaTeX: `P(x) = \lambda_n P_n(x) + (1-\lambda_n)[\lambda_{n-1} P_{n-1}(x) + ...]`,
			FormulaASCII: "P(x) = weighted_blend(P_order_n(x), P_order_n-1(x), ..., P_order_0(x))",
			Description:  "Blends predictions from multiple context orders with escape mechanism",
			Parameters: map[string]string{
				"max_order": "maximum context order",
				"escape":    "escape method",
			},
			ParamRanges: []ParamRange{
				{Name: "max_order", Values: []any{4, 5, 6, 8}},
				{Name: "escape", Values: []any{"PPMA", "PPMB", "PPMC", "PPMD", "PPMD+"}},
			},
			TimeComplexity:  "O(n * max_order)",
			SpaceComplexity: "O(|Σ|^max_order)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
		},
		{
			Category:     Predictor,
			Name:         "Dynamic Markov Compression (DMC)",
			FormulaLaTeX: `P(b|state) = \frac{count(state, b) + 1}{count(state) + 2}; \text{ clone states adaptively}`,
			FormulaASCII: "P(bit|state) = (count(state,bit) + 1) / (count(state) + 2); clone when threshold exceeded",
			Description:  "Bit-level Markov model that dynamically clones states",
			Parameters: map[string]string{
				"threshold": "cloning threshold",
			},
			ParamRanges: []ParamRange{
				{Name: "threshold", Values: []any{2, 4, 8, 16}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(states)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
		},
		{
			Category:     Predictor,
			Name:         "Linear Predictor",
			FormulaLaTeX: `\hat{x}_i = \sum_{j=1}^{p} a_j x_{i-j}`,
			FormulaASCII: "x_hat_i = SUM(a_j * x_{i-j}) for j=1 to p",
			Description:  "Linear combination of previous samples; used in FLAC, PNG",
			Parameters: map[string]string{
				"order":        "predictor order p",
				"coefficients": "predictor coefficients",
			},
			ParamRanges: []ParamRange{
				{Name: "order", Values: []any{1, 2, 3, 4}},
			},
			TimeComplexity:  "O(n * p)",
			SpaceComplexity: "O(p)",
			Stages:          []Stage{StageTransform, StageModeling},
			Lossless:        true,
		},
		{
			Category:        Predictor,
			Name:            "PNG Predictors (Paeth)",
			FormulaLaTeX:    `Paeth(a,b,c) = \text{argmin}_{x \in \{a,b,c\}} |x - (a+b-c)|`,
			FormulaASCII:    "Paeth(left, above, upper_left) = closest_to(left + above - upper_left)",
			Description:     "2D predictor selecting from left/above/diagonal based on gradient",
			TimeComplexity:  "O(1) per pixel",
			SpaceComplexity: "O(width)",
			Stages:          []Stage{StageTransform},
			Lossless:        true,
		},
		{
			Category:     Predictor,
			Name:         "Context Tree Weighting (CTW)",
			FormulaLaTeX: `P_s = \frac{1}{2}P_e(s) + \frac{1}{2}P_{s0}P_{s1}`,
			FormulaASCII: "P_s = 0.5 * P_estimated(s) + 0.5 * P_child0 * P_child1",
			Description:  "Bayesian mixture over all context tree depths; theoretically optimal",
			Parameters: map[string]string{
				"max_depth": "maximum tree depth",
			},
			ParamRanges: []ParamRange{
				{Name: "max_depth", Values: []any{8, 16, 24, 32, 48}},
			},
			TimeComplexity:  "O(n * depth)",
			SpaceComplexity: "O(2^depth)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
		},
	}
}

// dictionaryMethods - the LZ family (stages 1-2, some reach 3).
func dictionaryMethods() []Component {
	return []Component{
		{
			Category:     Dictionary,
			Name:         "LZ77 (Sliding Window)",
			FormulaLaTeX: `(d, l, c) \text{ where } d = \text{distance}, l = \text{length}, c = \text{next char}`,
			FormulaASCII: "encode(match) = (distance_back, match_length, next_char)",
			Description:  "Replace repeated sequences with back-references; basis for DEFLATE",
			Parameters: map[string]string{
				"window_size":    "sliding window size",
				"lookahead_size": "lookahead buffer size",
			},
			ParamRanges: []ParamRange{
				{Name: "window_size", Values: []any{4096, 8192, 32768, 65536}},
				{Name: "lookahead_size", Values: []any{16, 32, 64, 256}},
			},
			TimeComplexity:  "O(n * window)",
			SpaceComplexity: "O(window)",
			Stages:          []Stage{StageTransform, StageModeling},
			Lossless:        true,
		},
		{
			Category:     Dictionary,
			Name:         "LZ78 (Explicit Dictionary)",
			FormulaLaTeX: `(i, c) \text{ where } i = \text{dict index}, c = \text{extending char}`,
			FormulaASCII: "encode(phrase) = (dictionary_index, extending_character)",
			Description:  "Builds explicit dictionary of phrases; basis for LZW",
			Parameters: map[string]string{
				"max_dict_size": "maximum dictionary entries",
			},
			ParamRanges: []ParamRange{
				{Name: "max_dict_size", Values: []any{4096, 16384, 65536}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(dict_size)",
			Stages:          []Stage{StageTransform, StageModeling},
			Lossless:        true,
		},
		{
			Category:     Dictionary,
			Name:         "LZW (Lempel-Ziv-Welch)",
			FormulaLaTeX: `\text{output } dict[w]; \text{ add } w+c \text{ to dict}; w = c`,
			FormulaASCII: "output(dict[w]); dict[next_index] = w + c; w = c",
			Description:  "Outputs only dictionary indices; used in GIF, early Unix compress",
			Parameters: map[string]string{
				"max_bits": "maximum code bits",
			},
			ParamRanges: []ParamRange{
				{Name: "max_bits", Values: []any{12, 14, 16}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(2^max_bits)",
			Stages:          []Stage{StageTransform, StageModeling},
			Lossless:        true,
		},
		{
			Category:     Dictionary,
			Name:         "LZSS (LZ77 + flags)",
			FormulaLaTeX: `\text{flag bit } + \begin{cases} \text{literal byte} & \text{if flag}=0 \\ (d, l) & \text{if flag}=1 \end{cases}`,
			FormulaASCII: "flag_bit + (literal OR (distance, length))",
			Description:  "LZ77 variant with flag bits; more efficient for short matches",
			Parameters: map[string]string{
				"min_match": "minimum match length",
			},
			ParamRanges: []ParamRange{
				{Name: "min_match", Values: []any{2, 3, 4}},
			},
			TimeComplexity:  "O(n * window)",
			SpaceComplexity: "O(window)",
			Stages:          []Stage{StageTransform, StageModeling},
			Lossless:        true,
		},
		{
			Category:     Dictionary,
			Name:         "LZMA (Lempel-Ziv-Markov chain)",
			FormulaLaTeX: `LZ77 + \text{range coder} + \text{context-dependent bit models}`,
			FormulaASCII: "LZMA = LZ77_matches + range_coder(context_modeled_bits)",
			Description:  "LZ77 with range coding and sophisticated context modeling; used in 7z, xz",
			Parameters: map[string]string{
				"dict_size": "dictionary size",
				"lc":        "literal context bits",
				"lp":        "literal position bits",
				"pb":        "position bits",
			},
			ParamRanges: []ParamRange{
				{Name: "dict_size", Values: []any{65536, 1048576, 16777216, 67108864}},
				{Name: "lc", Values: []any{3, 4}},
				{Name: "lp", Values: []any{0, 1, 2}},
				{Name: "pb", Values: []any{0, 1, 2}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(dict_size)",
			Stages:          []Stage{StageTransform, StageModeling, StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:     Dictionary,
			Name:         "LZ4 (Fast LZ)",
			FormulaLaTeX: `\text{token} = (lit\_len : 4, match\_len : 4) + \text{literals} + \text{offset}`,
			FormulaASCII: "token = (literal_length:4bits, match_length:4bits) + literals + offset16",
			Description:  "Extremely fast LZ77 variant optimized for decompression speed",
			Parameters: map[string]string{
				"acceleration": "compression level",
			},
			ParamRanges: []ParamRange{
				{Name: "acceleration", Values: []any{1, 2, 4, 8}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(64KB)",
			Stages:          []Stage{StageTransform, StageModeling},
			Lossless:        true,
		},
		{
			Category:     Dictionary,
			Name:         "Zstandard (ZSTD)",
			FormulaLaTeX: `FSE(\text{literals}) + FSE(\text{sequences}) + \text{match copying}`,
			FormulaASCII: "ZSTD = FSE_entropy(literals) + FSE_entropy(sequences) + matches",
			Description:  "Modern LZ77 + ANS entropy coding; excellent ratio/speed tradeoff",
			Parameters: map[string]string{
				"level": "compression level",
			},
			ParamRanges: []ParamRange{
				{Name: "level", Values: intRange(1, 22)},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(window_size)",
			Stages:          []Stage{StageTransform, StageModeling, StageEntropyCoding},
			Lossless:        true,
		},
	}
}

// entropyCoders - final stage bit-level encoding (stage 3).
func entropyCoders() []Component {
	return []Component{
		{
			Category:     EntropyCoder,
			Name:         "Huffman Coding",
			FormulaLaTeX: `L(x) = \lceil -\log_2 p(x) \rceil \text{ (optimal prefix code)}`,
			FormulaASCII: "code_length(x) = ceil(-log2(p(x)))",
			Description:  "Optimal prefix-free code for known distributions; used in DEFLATE",
			Parameters: map[string]string{
				"adaptive": "whether to adapt code dynamically",
			},
			ParamRanges: []ParamRange{
				{Name: "adaptive", Values: []any{false, true}},
			},
			TimeComplexity:  "O(n + |Σ| log |Σ|)",
			SpaceComplexity: "O(|Σ|)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:        EntropyCoder,
			Name:            "Canonical Huffman",
			FormulaLaTeX:    `\text{code}(s) = \text{base}[len(s)] + \text{rank within length}`,
			FormulaASCII:    "code(s) = base[length(s)] + rank_within_same_length",
			Description:     "Huffman variant requiring only code lengths to reconstruct; used in DEFLATE",
			TimeComplexity:  "O(n + |Σ| log |Σ|)",
			SpaceComplexity: "O(|Σ|)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:     EntropyCoder,
			Name:         "Arithmetic Coding",
			FormulaLaTeX: `[low, high) \leftarrow [low + range \cdot CDF(x-1), low + range \cdot CDF(x))`,
			FormulaASCII: "[low, high) = [low + range*CDF(x-1), low + range*CDF(x))",
			Description:  "Near-optimal entropy coding; approaches H(X) bits per symbol",
			Parameters: map[string]string{
				"precision": "arithmetic precision bits",
			},
			ParamRanges: []ParamRange{
				{Name: "precision", Values: []any{16, 24, 32, 64}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:        EntropyCoder,
			Name:            "Range Coding",
			FormulaLaTeX:    `range = high - low; \quad high = low + range \cdot p_{cum}(x); \quad low += range \cdot p_{cum}(x-1)`,
			FormulaASCII:    "range = high - low; update [low, high) based on cumulative probability",
			Description:     "Arithmetic coding variant with byte-aligned output; used in LZMA",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:     EntropyCoder,
			Name:         "Asymmetric Numeral Systems (ANS)",
			FormulaLaTeX: `C(x, s) = \lfloor x/f_s \rfloor \cdot 2^n + CDF(s) + (x \mod f_s)`,
			FormulaASCII: "C(state, symbol) = floor(state/freq) * 2^n + CDF(symbol) + (state mod freq)",
			Description:  "Modern entropy coder combining arithmetic efficiency with table-based speed",
			Parameters: map[string]string{
				"table_log": "log2 of state table size",
			},
			ParamRanges: []ParamRange{
				{Name: "table_log", Values: []any{9, 10, 11, 12}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(2^table_log)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:     EntropyCoder,
			Name:         "tANS (Tabled ANS)",
			FormulaLaTeX: `state' = table[state][symbol]; \quad \text{output} = state' \gg \text{bits}`,
			FormulaASCII: "new_state = encoding_table[state][symbol]; output overflowing bits",
			Description:  "Table-driven ANS for very fast encoding/decoding; used in ZSTD",
			Parameters: map[string]string{
				"table_log": "log2 of table size",
			},
			ParamRanges: []ParamRange{
				{Name: "table_log", Values: []any{9, 10, 11, 12}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(|Σ| * 2^table_log)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:     EntropyCoder,
			Name:         "rANS (Range ANS)",
			FormulaLaTeX: `x' = (x // f_s) \cdot M + CDF(s) + (x \mod f_s)`,
			FormulaASCII: "new_state = (state // freq) * total_freq + CDF(symbol) + (state mod freq)",
			Description:  "Range-based ANS; good for adaptive coding",
			Parameters: map[string]string{
				"precision": "frequency precision bits",
			},
			ParamRanges: []ParamRange{
				{Name: "precision", Values: []any{12, 14, 16}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(|Σ|)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
	}
}

// runLengthEncoders - run-length encoding variants (stages 2-3).
func runLengthEncoders() []Component {
	return []Component{
		{
			Category:     RunLength,
			Name:         "Basic RLE",
			FormulaLaTeX: `\text{encode}(s^n) = (n, s)`,
			FormulaASCII: "encode(symbol repeated n times) = (count, symbol)",
			Description:  "Replace runs of identical symbols with (count, symbol) pairs",
			Parameters: map[string]string{
				"max_run": "maximum run length",
			},
			ParamRanges: []ParamRange{
				{Name: "max_run", Values: []any{127, 255, 65535}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageModeling, StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:        RunLength,
			Name:            "PackBits RLE",
			FormulaLaTeX:    `\begin{cases} n \geq 0: & n+1 \text{ literal bytes follow} \\ n < 0: & \text{repeat next byte } |n|+1 \text{ times} \end{cases}`,
			FormulaASCII:    "n >= 0: (n+1) literals follow; n < 0: repeat next byte (|n|+1) times",
			Description:     "Apple's RLE variant; efficient for mixed runs and literals",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageModeling, StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:     RunLength,
			Name:         "Zero RLE",
			FormulaLaTeX: `\text{encode}(0^n) = (\text{ZERO\_TOKEN}, n); \text{ others literal}`,
			FormulaASCII: "encode(n zeros) = (ZERO_TOKEN, count); non-zeros passed through",
			Description:  "RLE specialized for runs of zeros; common after BWT+MTF",
			Parameters: map[string]string{
				"threshold": "minimum zeros to encode",
			},
			ParamRanges: []ParamRange{
				{Name: "threshold", Values: []any{1, 2, 3}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
			Prerequisites:   []string{"Move-to-Front Transform"},
		},
		{
			Category:     RunLength,
			Name:         "Golomb-Rice RLE",
			FormulaLaTeX: `q = \lfloor n/m \rfloor, r = n \mod m; \text{ encode } q \text{ in unary, } r \text{ in binary}`,
			FormulaASCII: "quotient = n // m; remainder = n mod m; output unary(q) + binary(r)",
			Description:  "Variable-length RLE using Golomb coding; optimal for geometric distribution",
			Parameters: map[string]string{
				"m": "Golomb divisor (power of 2 for Rice)",
			},
			ParamRanges: []ParamRange{
				{Name: "m", Values: []any{1, 2, 4, 8, 16, 32}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageModeling, StageEntropyCoding},
			Lossless:        true,
		},
	}
}

// contextModels - context mixing and modeling (stage 2).
func contextModels() []Component {
	return []Component{
		{
			Category:     ContextModel,
			Name:         "Context Mixing (Linear)",
			FormulaLaTeX: `P = \sum_{i} w_i \cdot P_i \text{ where } \sum w_i = 1`,
			FormulaASCII: "P = SUM(weight_i * P_i) where weights sum to 1",
			Description:  "Weighted combination of multiple context model predictions",
			Parameters: map[string]string{
				"num_models": "number of models to mix",
			},
			ParamRanges: []ParamRange{
				{Name: "num_models", Values: []any{2, 4, 8, 16}},
			},
			TimeComplexity:  "O(n * num_models)",
			SpaceComplexity: "O(num_models * model_size)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
		},
		{
			Category:     ContextModel,
			Name:         "Context Mixing (Logistic/PAQ)",
			FormulaLaTeX: `P = \sigma\left(\sum_i w_i \cdot \text{stretch}(P_i)\right) \text{ where stretch}(p) = \ln\frac{p}{1-p}`,
			FormulaASCII: "P = sigmoid(SUM(w_i * ln(P_i / (1 - P_i))))",
			Description:  "Logistic mixing in log-odds space; more stable than linear mixing",
			Parameters: map[string]string{
				"learning_rate": "weight adaptation rate",
			},
			ParamRanges: []ParamRange{
				{Name: "learning_rate", Values: []any{0.001, 0.005, 0.01, 0.05}},
			},
			TimeComplexity:  "O(n * num_models)",
			SpaceComplexity: "O(num_models * model_size)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
		},
		{
			Category:     ContextModel,
			Name:         "Secondary Symbol Estimation (SSE)",
			FormulaLaTeX: `P' = T[context][discretize(P)]`,
			FormulaASCII: "P_adjusted = lookup_table[context][quantized_probability]",
			Description:  "Table-based probability adjustment; sharpens mixer output",
			Parameters: map[string]string{
				"table_bits": "bits for probability quantization",
			},
			ParamRanges: []ParamRange{
				{Name: "table_bits", Values: []any{5, 6, 7, 8}},
			},
			TimeComplexity:  "O(1)",
			SpaceComplexity: "O(contexts * 2^table_bits)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
		},
		{
			Category:     ContextModel,
			Name:         "Indirect Context Model",
			FormulaLaTeX: `context = hash(byte_{-1}, byte_{-2}, ..., bit\_pos)`,
			FormulaASCII: "context = hash(previous_bytes, current_bit_position)",
			Description:  "Uses hash of recent bytes plus bit position as context",
			Parameters: map[string]string{
				"context_bits": "bits for context hash",
			},
			ParamRanges: []ParamRange{
				{Name: "context_bits", Values: []any{16, 18, 20, 22, 24}},
			},
			TimeComplexity:  "O(1)",
			SpaceComplexity: "O(2^context_bits)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
		},
		{
			Category:     ContextModel,
			Name:         "Match Model",
			FormulaLaTeX: `P(bit) = \begin{cases} 0.99 & \text{if match and bit matches} \\ 0.01 & \text{if match and bit differs} \\ 0.5 & \text{no match} \end{cases}`,
			FormulaASCII: "P(bit) = 0.99 if matching_context AND bit_matches, else 0.01 if differs, else 0.5",
			Description:  "Predicts based on longest context match in history",
			Parameters: map[string]string{
				"min_match": "minimum match length",
			},
			ParamRanges: []ParamRange{
				{Name: "min_match", Values: []any{4, 8, 16}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(history_size)",
			Stages:          []Stage{StageModeling},
			Lossless:        true,
		},
	}
}

// filters - pre-processing filters (stage 0).
func filters() []Component {
	return []Component{
		{
			Category:        Filter,
			Name:            "E8/E9 Transform (x86 filter)",
			FormulaLaTeX:    `\text{CALL/JMP}(rel) \rightarrow \text{CALL/JMP}(abs)`,
			FormulaASCII:    "convert relative x86 CALL/JMP addresses to absolute",
			Description:     "Converts relative x86 jump addresses to absolute for better compression",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
		{
			Category:        Filter,
			Name:            "ARM Filter",
			FormulaLaTeX:    `\text{BL}(rel) \rightarrow \text{BL}(abs)`,
			FormulaASCII:    "convert relative ARM branch-link addresses to absolute",
			Description:     "Converts relative ARM BL addresses to absolute",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
		{
			Category:     Filter,
			Name:         "Record Reordering",
			FormulaLaTeX: `interleave(col_1, col_2, ..., col_n) \text{ from } (rec_1, rec_2, ...)`,
			FormulaASCII: "reorder [rec1, rec2, ...] to [col1_values, col2_values, ...]",
			Description:  "Reorders columnar data for better locality",
			Parameters: map[string]string{
				"record_size": "fixed record size in bytes",
			},
			ParamRanges: []ParamRange{
				{Name: "record_size", Values: []any{4, 8, 16, 32, 64, 128}},
			},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(n)",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
		{
			Category:        Filter,
			Name:            "RGB → YCbCr (Lossless)",
			FormulaLaTeX:    `Y = R + G + B; Cb = B - G; Cr = R - G`,
			FormulaASCII:    "Y = R + G + B; Cb = B - G; Cr = R - G (reversible integer version)",
			Description:     "Reversible color space transform; decorrelates image data",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
		{
			Category:        Filter,
			Name:            "Bit Plane Separation",
			FormulaLaTeX:    `planes[i] = (bytes >> i) \& 1 \text{ for } i \in [0, 7]`,
			FormulaASCII:    "split bytes into 8 bit planes: plane[i] = all i-th bits",
			Description:     "Separates data into bit planes for better entropy coding",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(n)",
			Stages:          []Stage{StagePreFilter},
			Lossless:        true,
		},
	}
}

// integerCoders - universal codes for integers (stage 3).
func integerCoders() []Component {
	return []Component{
		{
			Category:        IntegerCoder,
			Name:            "Unary Code",
			FormulaLaTeX:    `U(n) = 1^n 0 \text{ (n ones followed by zero)}`,
			FormulaASCII:    "U(n) = n ones followed by a zero",
			Description:     "Simplest universal code; optimal for geometric(0.5) distribution",
			TimeComplexity:  "O(n) per integer",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:        IntegerCoder,
			Name:            "Elias Gamma Code",
			FormulaLaTeX:    `\gamma(n) = U(\lfloor\log_2 n\rfloor) \cdot bin(n)`,
			FormulaASCII:    "gamma(n) = unary(floor(log2(n))) + binary(n)",
			Description:     "Universal code: unary length prefix + binary value",
			TimeComplexity:  "O(log n) per integer",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:        IntegerCoder,
			Name:            "Elias Delta Code",
			FormulaLaTeX:    `\delta(n) = \gamma(\lfloor\log_2 n\rfloor + 1) \cdot bin(n \mod 2^{\lfloor\log_2 n\rfloor})`,
			FormulaASCII:    "delta(n) = gamma(floor(log2(n)) + 1) + binary(n mod 2^floor(log2(n)))",
			Description:     "More efficient than gamma for larger integers",
			TimeComplexity:  "O(log log n) per integer",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:     IntegerCoder,
			Name:         "Golomb Code",
			FormulaLaTeX: `G_m(n) = U(\lfloor n/m \rfloor) \cdot bin_m(n \mod m)`,
			FormulaASCII: "G_m(n) = unary(n // m) + binary(n mod m, ceil(log2(m)) bits)",
			Description:  "Optimal for geometric distribution with parameter p; m ≈ -1/log2(1-p)",
			Parameters: map[string]string{
				"m": "Golomb parameter",
			},
			ParamRanges: []ParamRange{
				{Name: "m", Values: []any{1, 2, 3, 4, 5, 6, 7, 8, 10, 16, 32}},
			},
			TimeComplexity:  "O(n/m + log m) per integer",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:     IntegerCoder,
			Name:         "Rice Code",
			FormulaLaTeX: `R_k(n) = U(n >> k) \cdot bin(n \& (2^k - 1), k)`,
			FormulaASCII: "R_k(n) = unary(n >> k) + k lowest bits of n",
			Description:  "Golomb code with m = 2^k; simpler and faster",
			Parameters: map[string]string{
				"k": "Rice parameter (log2 of divisor)",
			},
			ParamRanges: []ParamRange{
				{Name: "k", Values: []any{0, 1, 2, 3, 4, 5, 6}},
			},
			TimeComplexity:  "O(n >> k + k) per integer",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:     IntegerCoder,
			Name:         "Exponential Golomb",
			FormulaLaTeX: `Exp(n, k) = \gamma(1 + (n >> k)) \cdot bin(n \& (2^k-1), k)`,
			FormulaASCII: "ExpGolomb(n, k) = gamma(1 + (n >> k)) + k lowest bits",
			Description:  "Used in H.264/AVC video coding",
			Parameters: map[string]string{
				"k": "order parameter",
			},
			ParamRanges: []ParamRange{
				{Name: "k", Values: []any{0, 1, 2, 3}},
			},
			TimeComplexity:  "O(log(n >> k) + k) per integer",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
		{
			Category:        IntegerCoder,
			Name:            "VByte / Varint",
			FormulaLaTeX:    `\text{VByte}(n) = \text{7 bits data + 1 continuation bit per byte}`,
			FormulaASCII:    "VByte(n) = sequence of 7-bit chunks with high-bit continuation flag",
			Description:     "Simple variable-byte integer encoding; used in Protocol Buffers",
			TimeComplexity:  "O(log n / 7) per integer",
			SpaceComplexity: "O(1)",
			Stages:          []Stage{StageEntropyCoding},
			Lossless:        true,
		},
	}
}
