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

package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wso2/consent-ai-debug-service/internal/system/constants"
	"github.com/wso2/consent-ai-debug-service/internal/system/utils"
	userModel "github.com/wso2/consent-ai-debug-service/internal/user_data/model"
	"golang.org/x/text/cases"
)

// Generate produces the output text and confidence for a prompt from the accessible data only.
// It is deterministic: equal inputs give equal outputs.
func Generate(userId, prompt string, data userModel.AccessibleData) (string, float64) {

	purchases := data.PurchaseHistory()
	preferences := data.Preferences()
	activity := data.Activity()

	var output string
	if isRecommendationPrompt(prompt) {
		output = recommendationOutput(purchases, preferences, activity)
	} else {
		output = genericOutput(purchases, preferences, activity)
	}
	return output, Confidence(len(purchases) + len(preferences) + len(activity))
}

// Confidence grows linearly with the number of accessible data points and is capped.
func Confidence(dataPoints int) float64 {
	confidence := math.Min(constants.MaxConfidence,
		constants.BaseConfidence+float64(dataPoints)*constants.ConfidencePerPoint)
	return utils.RoundTo(confidence, 2)
}

func isRecommendationPrompt(prompt string) bool {
	folded := cases.Fold().String(prompt)
	for _, keyword := range constants.RecommendationKeywords {
		if strings.Contains(folded, keyword) {
			return true
		}
	}
	return false
}

func recommendationOutput(purchases []string, preferences map[string]string, activity []string) string {

	hasPurchases := len(purchases) > 0
	hasPreferences := len(preferences) > 0
	hasActivity := len(activity) > 0

	switch {
	case hasPurchases && hasPreferences && hasActivity:
		return fmt.Sprintf("Based on your complete profile, I can provide highly personalized recommendations! "+
			"I see you purchased %s, prefer %s theme, and recently %s. "+
			"I recommend exploring complementary accessories and products tailored to your preferences.",
			firstItems(purchases, 2), preferenceOr(preferences, constants.ThemePreferenceKey, constants.DefaultTheme),
			recentActivity(activity, "interacted with the platform"))

	case hasPurchases && hasPreferences:
		return fmt.Sprintf("Based on your purchase history (%s) and preferences (%s theme), "+
			"I can suggest related products. However, I don't have access to your recent activity data "+
			"which would help me understand your current interests better.",
			firstItems(purchases, 2), preferenceOr(preferences, constants.ThemePreferenceKey, constants.DefaultTheme))

	case hasPurchases && hasActivity:
		return fmt.Sprintf("Based on your purchases (%s) and recent activity (%s), "+
			"I can recommend products. Access to your preferences would help me personalize the experience further.",
			firstItems(purchases, 2), recentActivity(activity, "browsing"))

	case hasPreferences && hasActivity:
		return fmt.Sprintf("I can see your preferences (%s theme, %s language) and recent activity, "+
			"but without your purchase history, I can only provide general recommendations rather than "+
			"personalized product suggestions.",
			preferenceOr(preferences, constants.ThemePreferenceKey, constants.DefaultTheme),
			preferenceOr(preferences, constants.LanguagePreferenceKey, constants.DefaultLanguage))

	case hasPurchases:
		return fmt.Sprintf("Based only on your purchase history (%s), I can recommend related items. "+
			"However, I don't have access to your preferences or activity data, which limits personalization.",
			firstItems(purchases, 2))

	case hasPreferences:
		return fmt.Sprintf("I can see your preferences (%s), but without purchase history or activity data, "+
			"I can only provide generic suggestions rather than personalized recommendations.",
			firstPreferences(preferences, 2))

	case hasActivity:
		return fmt.Sprintf("Based on your recent activity (%s), I can suggest some options, "+
			"but without purchase history or preferences, my recommendations will be quite limited.",
			lastActivityTerms(activity, 2))

	default:
		return "I'd be happy to recommend products, but I don't have access to your purchase history, " +
			"preferences, or activity data. Please grant consent to these categories for personalized recommendations."
	}
}

func genericOutput(purchases []string, preferences map[string]string, activity []string) string {

	hasPurchases := len(purchases) > 0
	hasPreferences := len(preferences) > 0
	hasActivity := len(activity) > 0

	if hasPurchases && hasPreferences && hasActivity {
		return fmt.Sprintf("I have full access to your profile with %d purchases, %d preferences, and %d activity "+
			"events. I can provide comprehensive assistance!", len(purchases), len(preferences), len(activity))
	}
	if !hasPurchases && !hasPreferences && !hasActivity {
		return "I can help you, but I have no access to your data. " +
			"Consider granting consent to purchase history, preferences, or activity for better assistance."
	}

	var available, missing []string
	if hasPurchases {
		available = append(available, fmt.Sprintf("purchase history (%d items)", len(purchases)))
	} else {
		missing = append(missing, "purchase history")
	}
	if hasPreferences {
		available = append(available, fmt.Sprintf("preferences (%d settings)", len(preferences)))
	} else {
		missing = append(missing, "preferences")
	}
	if hasActivity {
		available = append(available, fmt.Sprintf("activity (%d events)", len(activity)))
	} else {
		missing = append(missing, "activity")
	}
	return fmt.Sprintf("I have access to your %s, but I'm missing %s. "+
		"Granting additional consent would improve my responses.",
		strings.Join(available, " and "), strings.Join(missing, " and "))
}

func firstItems(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func preferenceOr(preferences map[string]string, key, fallback string) string {
	if value, ok := preferences[key]; ok {
		return value
	}
	return fallback
}

// recentActivity returns the term of the latest activity event, e.g. "mouse" for "add_to_cart:mouse".
func recentActivity(activity []string, fallback string) string {
	if len(activity) == 0 {
		return fallback
	}
	latest := activity[len(activity)-1]
	if !strings.Contains(latest, ":") {
		return fallback
	}
	return activityTerm(latest)
}

func activityTerm(event string) string {
	return event[strings.LastIndex(event, ":")+1:]
}

func lastActivityTerms(activity []string, n int) string {
	if len(activity) > n {
		activity = activity[len(activity)-n:]
	}
	terms := make([]string, 0, len(activity))
	for _, event := range activity {
		terms = append(terms, activityTerm(event))
	}
	return strings.Join(terms, ", ")
}

// firstPreferences renders up to n "key: value" pairs. Theme and language come first, the remaining
// keys follow in lexical order.
func firstPreferences(preferences map[string]string, n int) string {
	keys := orderedPreferenceKeys(preferences)
	if len(keys) > n {
		keys = keys[:n]
	}
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s: %s", key, preferences[key]))
	}
	return strings.Join(pairs, ", ")
}

func orderedPreferenceKeys(preferences map[string]string) []string {
	keys := make([]string, 0, len(preferences))
	var rest []string
	for _, key := range []string{constants.ThemePreferenceKey, constants.LanguagePreferenceKey} {
		if _, ok := preferences[key]; ok {
			keys = append(keys, key)
		}
	}
	for key := range preferences {
		if key != constants.ThemePreferenceKey && key != constants.LanguagePreferenceKey {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
