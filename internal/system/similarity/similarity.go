/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package similarity

import (
	"math"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize lowercases text and splits it into maximal runs of letters, digits and underscores.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// CosineSimilarity compares the term frequency vectors of both texts. The result is in [0, 1]
// and is 0 when either text has no tokens.
func CosineSimilarity(text1, text2 string) float64 {

	tokens1 := Tokenize(text1)
	tokens2 := Tokenize(text2)
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0.0
	}

	freq1 := termFrequencies(tokens1)
	freq2 := termFrequencies(tokens2)

	var dot float64
	for token, count1 := range freq1 {
		dot += float64(count1 * freq2[token])
	}

	magnitude1 := magnitude(freq1)
	magnitude2 := magnitude(freq2)
	if magnitude1 == 0 || magnitude2 == 0 {
		return 0.0
	}

	// Float error can push identical vectors a hair above 1.
	return math.Min(1.0, dot/(magnitude1*magnitude2))
}

// TokenOverlap is the Jaccard index of the token sets of both texts.
func TokenOverlap(text1, text2 string) float64 {

	set1 := tokenSet(Tokenize(text1))
	set2 := tokenSet(Tokenize(text2))
	if len(set1) == 0 && len(set2) == 0 {
		return 1.0
	}
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range set1 {
		if _, ok := set2[token]; ok {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	return float64(intersection) / float64(union)
}

// ComputeSimilarity is the metric used when comparing generated outputs.
func ComputeSimilarity(text1, text2 string) float64 {
	return CosineSimilarity(text1, text2)
}

func termFrequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, token := range tokens {
		freq[token]++
	}
	return freq
}

func magnitude(freq map[string]int) float64 {
	var sum float64
	for _, count := range freq {
		sum += float64(count * count)
	}
	return math.Sqrt(sum)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
