package voices

// builtinVoices — встроенная таблица голосов. Категории консолидируются
// один раз при сборке каталога, поэтому здесь могут встречаться и
// устаревшие значения.
var builtinVoices = []Voice{
	{ID: "Blake_Sports_Podcast_Host", Name: "Blake - Sports Podcast Host", Description: "Upbeat millennial male host, fast-paced, inviting, sports podcast.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Luna_Music_Review_Host", Name: "Luna - Music Review Host", Description: "Cool, laid-back female host, moderate energy, music review show.", Language: "English", Gender: "Female", Category: "Entertainment"},
	{ID: "Zack_Gaming_Enthusiast", Name: "Zack - Gaming Enthusiast", Description: "Enthusiastic young gamer male host, lively, quick tempo, gaming podcast.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Maya_Pop_Culture_Queen", Name: "Maya - Pop Culture Queen", Description: "Witty Gen Z female host, playful, rapid exchanges, pop culture podcast.", Language: "English", Gender: "Female", Category: "Entertainment"},
	{ID: "Professor_Crime_Analyst", Name: "Professor - Crime Analyst", Description: "Intellectual older male, deep voice, measured but dynamic, true crime podcast.", Language: "English", Gender: "Male", Category: "News & Media"},
	{ID: "Sofia_Relationship_Coach", Name: "Sofia - Relationship Coach", Description: "Warm, vibrant Latina female, quick delivery, relationship advice podcast.", Language: "English", Gender: "Female", Category: "Health & Wellness"},
	{ID: "Benedict_Current_Affairs", Name: "Benedict - Current Affairs", Description: "Assertive British male host, confident, expressive, current affairs roundtable.", Language: "English", Gender: "Male", Category: "News & Media"},
	{ID: "Scarlett_Comedy_Southern", Name: "Scarlett - Comedy Southern", Description: "Sassy, humorous Southern female, energetic, comedy podcast.", Language: "English", Gender: "Female", Category: "Entertainment"},
	{ID: "Marcus_Mindfulness_Guide", Name: "Marcus - Mindfulness Guide", Description: "Friendly Gen X male, steady pace, thoughtful, mindfulness podcast.", Language: "English", Gender: "Male", Category: "Health & Wellness"},
	{ID: "Zara_Beauty_Influencer", Name: "Zara - Beauty Influencer", Description: "Charismatic young Black female host, animated, beauty/fashion influencer.", Language: "English", Gender: "Female", Category: "Creative Arts"},
	{ID: "Rocco_Classic_Rock_DJ", Name: "Rocco - Classic Rock DJ", Description: "Gravelly voiced classic rock DJ, American accent, energetic, radio.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Tony_NYC_Morning_Radio", Name: "Tony - NYC Morning Radio", Description: "Slick, spirited NYC morning radio host, brisk, high-energy.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Grace_Weather_Forecaster", Name: "Grace - Weather Forecaster", Description: "Calm, trusted weather forecaster, gentle pace, reassuring, TV.", Language: "English", Gender: "Female", Category: "News & Media"},
	{ID: "Veronica_TV_News_Anchor", Name: "Veronica - TV News Anchor", Description: "Energetic TV news anchor (female), engaging tone, rapid headline delivery.", Language: "English", Gender: "Female", Category: "News & Media"},
	{ID: "Retro_Radio_Pirate", Name: "Retro - Radio Pirate", Description: "Nostalgic 80s pirate radio host, lively, storytelling.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Cyrus_Sarcastic_Critic", Name: "Cyrus - Sarcastic Critic", Description: "Sarcastic TV critic, deadpan delivery, snarky tone.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Amelie_French_Culture", Name: "Amelie - French Culture", Description: "Elegant French culture presenter, articulate, moderate speed.", Language: "French", Gender: "Female", Category: "Travel & Culture"},
	{ID: "Aussie_Variety_Host", Name: "Aussie - Variety Host", Description: "Expressive Australian variety show host, dynamic, upbeat.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Seamus_Irish_Phone_Host", Name: "Seamus - Irish Phone Host", Description: "Wry Irish late-night phone-in host, conversational, relaxed.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Dr_Maple_Science_Radio", Name: "Dr. Maple - Science Radio", Description: "Eccentric Canadian radio scientist, fast, exciting explanations.", Language: "English", Gender: "Male", Category: "Education"},
	{ID: "Tessa_TikTok_Star", Name: "Tessa - TikTok Star", Description: "Lively TikTok influencer (female), expressive, rapid-fire.", Language: "English", Gender: "Female", Category: "Community"},
	{ID: "Adventure_Vlog_Jake", Name: "Jake - Adventure Vlogger", Description: "Vlog-style energetic male, upbeat, natural, travel content.", Language: "English", Gender: "Male", Category: "Travel & Culture"},
	{ID: "Inspire_Coach_Mia", Name: "Mia - Inspiration Coach", Description: "Motivational Instagram coach, female, inspiring, quick tempo.", Language: "English", Gender: "Female", Category: "Health & Wellness"},
	{ID: "Wellness_Creator_Sage", Name: "Sage - Wellness Creator", Description: "Nurturing YouTube creator, gentle, moderate pace, wellness vlogs.", Language: "English", Gender: "Female", Category: "Health & Wellness"},
	{ID: "Explorer_Outdoors_Max", Name: "Max - Outdoor Explorer", Description: "Adventurous outdoorsman host, dynamic, vivid, YouTube expeditions.", Language: "English", Gender: "Male", Category: "Travel & Culture"},
	{ID: "Motivator_Joy_Speaker", Name: "Joy - Motivational Speaker", Description: "Joyful motivational speaker (male), vibrant, expressive.", Language: "English", Gender: "Male", Category: "Health & Wellness"},
	{ID: "Sincere_Apology_Voice", Name: "Sincere - Apology Voice", Description: "Sincere apology tone, gentle, moderate pace, influencer address.", Language: "English", Gender: "Neutral", Category: "Professional"},
	{ID: "Zen_Meditation_Master", Name: "Zen - Meditation Master", Description: "Calm, meditative guide (gender-neutral), soothing, tranquil.", Language: "English", Gender: "Neutral", Category: "Health & Wellness"},
	{ID: "Bestie_Social_Bubbly", Name: "Bestie - Social Bubbly", Description: "Playful best friend voice, bubbly, fast-paced, social podcast.", Language: "English", Gender: "Female", Category: "Community"},
	{ID: "Honest_Confessional_Raw", Name: "Raw - Honest Confessional", Description: "Vulnerable, slightly shaky but real, honest influencer confessional.", Language: "English", Gender: "Neutral", Category: "Community"},
	{ID: "Celebration_Party_Host", Name: "Party - Celebration Host", Description: "Bold, celebratory host, cheers and applause in speech.", Language: "English", Gender: "Neutral", Category: "Entertainment"},
	{ID: "Surprise_Panel_Reactor", Name: "Reactor - Surprise Panel", Description: "Surprised, quick, animated responder, panel show.", Language: "English", Gender: "Neutral", Category: "Entertainment"},
	{ID: "GameNight_Sports_Recap", Name: "GameNight - Sports Recap", Description: "Dramatic sports recap announcer (male), intense, game-night energy.", Language: "English", Gender: "Male", Category: "Sports & Fitness"},
	{ID: "Whisper_ASMR_Gentle", Name: "Whisper - ASMR Gentle", Description: "Gentle ASMR podcaster (female), whisper-soft, slow, serene.", Language: "English", Gender: "Female", Category: "Entertainment"},
	{ID: "Fantasy_Lore_Keeper", Name: "Lore - Fantasy Keeper", Description: "Animated fantasy lore storyteller, magical tone, swift.", Language: "English", Gender: "Neutral", Category: "Creative Arts"},
	{ID: "Homey_Cooking_Chef", Name: "Chef - Homey Cooking", Description: "Relaxed food/cooking host (male), warm, moderate, homey.", Language: "English", Gender: "Male", Category: "Lifestyle"},
	{ID: "Philosophy_Deep_Thinker", Name: "Thinker - Philosophy Deep", Description: "Introspective philosophy podcast host, thoughtful, moderate, reflective.", Language: "English", Gender: "Neutral", Category: "Education"},
	{ID: "TrueCrime_Team_Energy", Name: "Team - True Crime Energy", Description: "Lively true crime team, energetic group exchanges, multi-speaker style.", Language: "English", Gender: "Neutral", Category: "News & Media"},
	{ID: "Travel_Couple_Casual", Name: "Couple - Travel Casual", Description: "Relaxed travel couple voice, alternating style, casual, conversational.", Language: "English", Gender: "Neutral", Category: "Travel & Culture"},
	{ID: "Debate_Sharp_Moderator", Name: "Moderator - Debate Sharp", Description: "Intense debate moderator, fast, sharp, strong transitions.", Language: "English", Gender: "Neutral", Category: "News & Media"},
	{ID: "Finance_Tips_Expert", Name: "Expert - Finance Tips", Description: "Personal finance tips host (female), sharp, engaging.", Language: "English", Gender: "Female", Category: "Business"},
	{ID: "Victory_Sports_Ecstatic", Name: "Victory - Sports Ecstatic", Description: "Ecstatic sports victory commentator, raised tempo.", Language: "English", Gender: "Neutral", Category: "Sports & Fitness"},
	{ID: "Community_Call_Helper", Name: "Helper - Community Call", Description: "Community call-in show, empathetic host, patient, caring.", Language: "English", Gender: "Neutral", Category: "Community"},
	{ID: "Humor_Debate_Panelist", Name: "Panelist - Humor Debate", Description: "Humorous debate show panelist (male), witty, quick, banter.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "TownHall_Compassionate", Name: "TownHall - Compassionate", Description: "Sensitive, compassionate town hall moderator (female).", Language: "English", Gender: "Female", Category: "Community"},
	{ID: "Parent_Talk_Supportive", Name: "Parent - Talk Supportive", Description: "Friendly, supportive parent talk show host, gentle.", Language: "English", Gender: "Neutral", Category: "Lifestyle"},
	{ID: "Honest_Review_Critical", Name: "Review - Honest Critical", Description: "Honest, no-nonsense reviewer, critical, firm but fair.", Language: "English", Gender: "Neutral", Category: "Community"},
	{ID: "NewYork_Fast_Talker", Name: "NewYork - Fast Talker", Description: "Fast-talking New Yorker podcast host, classic accent.", Language: "English", Gender: "Neutral", Category: "Travel & Culture"},
	{ID: "Southern_Radio_Drawl", Name: "Southern - Radio Drawl", Description: "Southern US talk radio male, animated, drawl.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "London_Urban_Podcast", Name: "London - Urban Podcast", Description: "Fast-paced urban London podcast voice, energetic.", Language: "English", Gender: "Neutral", Category: "Travel & Culture"},
	{ID: "Scottish_Story_Warm", Name: "Scottish - Story Warm", Description: "Relaxed Scottish storytelling host, warm, playful.", Language: "English", Gender: "Neutral", Category: "Creative Arts"},
	{ID: "Toronto_News_Clipped", Name: "Toronto - News Clipped", Description: "Abrupt Toronto news podcaster, clipped but lively.", Language: "English", Gender: "Neutral", Category: "News & Media"},
	{ID: "Dublin_Quick_Wit", Name: "Dublin - Quick Wit", Description: "Quick-witted Dublin podcaster (female), musical voice.", Language: "English", Gender: "Female", Category: "Entertainment"},
	{ID: "Berlin_Energetic_Voice", Name: "Berlin - Energetic Voice", Description: "Energetic Berlin influencer (male), quick, expressive.", Language: "German", Gender: "Male", Category: "Community"},
	{ID: "Tokyo_Panel_Poised", Name: "Tokyo - Panel Poised", Description: "Poised Tokyo TV panel host, brisk, respectful.", Language: "Japanese", Gender: "Neutral", Category: "News & Media"},
	{ID: "Mumbai_Youth_Dynamic", Name: "Mumbai - Youth Dynamic", Description: "Upbeat Mumbai youth radio, lively, dynamic.", Language: "English", Gender: "Neutral", Category: "Lifestyle"},
	{ID: "Parody_Exaggerated_Host", Name: "Parody - Exaggerated Host", Description: "Over-the-top parody host, exaggerated delivery.", Language: "English", Gender: "Neutral", Category: "Entertainment"},
	{ID: "Deadpan_Satirist_Dry", Name: "Deadpan - Satirist Dry", Description: "Deadpan satirist, dry, slow, subtle humor.", Language: "English", Gender: "Neutral", Category: "Entertainment"},
	{ID: "Improv_Zany_Comedian", Name: "Improv - Zany Comedian", Description: "Zany improv comedian (male), rapid, offbeat.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Observational_Comedy_Live", Name: "Observational - Comedy Live", Description: "Observational comedian (female), animated, lively.", Language: "English", Gender: "Female", Category: "Entertainment"},
	{ID: "Prank_Mischief_Announcer", Name: "Prank - Mischief Announcer", Description: "Prank show announcer, high energy, mischief.", Language: "English", Gender: "Neutral", Category: "Entertainment"},
	{ID: "Outrage_Commentary_Sharp", Name: "Outrage - Commentary Sharp", Description: "Outraged commentator host, sharp, rapid.", Language: "English", Gender: "Neutral", Category: "News & Media"},
	{ID: "Disappointed_Gentle_Host", Name: "Disappointed - Gentle Host", Description: "Disappointed host, sad undertone, gentle.", Language: "English", Gender: "Neutral", Category: "Creative Arts"},
	{ID: "Anticipation_Suspense_Build", Name: "Anticipation - Suspense Build", Description: "Eager anticipation, heightened pace, suspenseful.", Language: "English", Gender: "Neutral", Category: "Entertainment"},
	{ID: "Frustrated_Complaint_Reader", Name: "Frustrated - Complaint Reader", Description: "Frustrated customer complaint reader, animated.", Language: "English", Gender: "Neutral", Category: "Business"},
	{ID: "Heartfelt_Thank_You", Name: "Heartfelt - Thank You", Description: "Heartfelt thank you message, warm, slow, sincere.", Language: "English", Gender: "Neutral", Category: "Creative Arts"},
	{ID: "Science_Passion_Explainer", Name: "Science - Passion Explainer", Description: "Passionate science explainer, fast but clear.", Language: "English", Gender: "Neutral", Category: "Education"},
	{ID: "History_Methodical_Voice", Name: "History - Methodical Voice", Description: "Methodical historian voice, careful, moderate tempo.", Language: "English", Gender: "Neutral", Category: "Education"},
	{ID: "PopCulture_Fun_Explainer", Name: "PopCulture - Fun Explainer", Description: "Playful pop culture explainer, quick, fun.", Language: "English", Gender: "Neutral", Category: "Entertainment"},
	{ID: "Literary_Poetic_Critic", Name: "Literary - Poetic Critic", Description: "Emotional literary critic, poetic, varied pace.", Language: "English", Gender: "Neutral", Category: "Creative Arts"},
	{ID: "Tech_Analytical_Reviewer", Name: "Tech - Analytical Reviewer", Description: "Detailed technology reviewer, analytical, crisp, moderate-fast.", Language: "English", Gender: "Neutral", Category: "Technology"},
	{ID: "Yoga_Mindful_Center", Name: "Yoga - Mindful Center", Description: "Mindful yoga podcast host, centered, slow, deliberate.", Language: "English", Gender: "Neutral", Category: "Health & Wellness"},
	{ID: "Yoga_Mindful_Center_Alt", Name: "Yoga - Mindful Center Alt", Description: "Alternative version of mindful yoga podcast host.", Language: "English", Gender: "Neutral", Category: "Health & Wellness"},
	{ID: "Couples_Therapy_Banter", Name: "Couples - Therapy Banter", Description: "Fast-paced couples therapy podcast, playful banter.", Language: "English", Gender: "Neutral", Category: "Health & Wellness"},
	{ID: "Couples_Therapy_Banter_Alt", Name: "Couples - Therapy Banter Alt", Description: "Alternative version of couples therapy podcast host.", Language: "English", Gender: "Neutral", Category: "Health & Wellness"},
	{ID: "Sophia_British_Narrator", Name: "Sophia - British Narrator", Description: "Warm, friendly female voice with a slight British accent, moderately fast, perfect for audiobook narration.", Language: "English", Gender: "Female", Category: "Creative Arts"},
	{ID: "Marcus_Bedtime_Storyteller", Name: "Marcus - Bedtime Storyteller", Description: "Deep, soothing male voice with a neutral American accent, slow pace, ideal for bedtime stories.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Eileen_Irish_Grandmother", Name: "Eileen - Irish Grandmother", Description: "Soft-spoken elderly woman with gentle Irish lilt, slow and tender, suited for children's books.", Language: "English", Gender: "Female", Category: "Creative Arts"},
	{ID: "Hamish_Scottish_Fantasy", Name: "Hamish - Scottish Fantasy", Description: "Lively Scottish male voice, energetic and quick, for fantasy tales.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Olivia_Australian_Educator", Name: "Olivia - Australian Educator", Description: "Clear, engaging young woman with Australian accent, average speed, for non-fiction narration.", Language: "English", Gender: "Female", Category: "Education"},
	{ID: "David_Documentary_Voice", Name: "David - Documentary Voice", Description: "Deep, authoritative male voice with confidence and gravitas, steady pace, ideal for documentary voiceovers.", Language: "English", Gender: "Male", Category: "Education"},
	{ID: "Rachel_News_Reporter", Name: "Rachel - News Reporter", Description: "Bright, articulate female voice with midwestern US accent, fast-paced, for news reporting.", Language: "English", Gender: "Female", Category: "News & Media"},
	{ID: "Winston_History_Narrator", Name: "Winston - History Narrator", Description: "Mature, formal British male, with RP accent, poised and measured, suited for history documentaries.", Language: "English", Gender: "Male", Category: "Education"},
	{ID: "Victoria_Breaking_News", Name: "Victoria - Breaking News", Description: "Determined, no-nonsense American woman, rapid delivery, for breaking news updates.", Language: "English", Gender: "Female", Category: "News & Media"},
	{ID: "Connor_Nature_Guide", Name: "Connor - Nature Guide", Description: "Resonant Canadian male, calm and unhurried, for nature documentaries.", Language: "English", Gender: "Male", Category: "Education"},
	{ID: "Emma_Educational_Coach", Name: "Emma - Educational Coach", Description: "Cheerful, energetic young voice with enthusiasm and clarity, moderate speed, great for educational content.", Language: "English", Gender: "Female", Category: "Education"},
	{ID: "Priya_Indian_Teacher", Name: "Priya - Indian Teacher", Description: "Clear-spoken Indian female teacher, warm tone, steady pace, ideal for e-learning.", Language: "English", Gender: "Female", Category: "Education"},
	{ID: "Hiroshi_Japanese_Instructor", Name: "Hiroshi - Japanese Instructor", Description: "Patient, friendly Japanese male educator, coaching tone, moderate speed.", Language: "English", Gender: "Male", Category: "Education"},
	{ID: "Tyler_STEM_Explainer", Name: "Tyler - STEM Explainer", Description: "Animated US teen, upbeat and lively, quick delivery, for STEM explainer videos.", Language: "English", Gender: "Male", Category: "Education"},
	{ID: "Margaret_British_Tutor", Name: "Margaret - British Tutor", Description: "Encouraging older female instructor, gentle British accent, slow to moderate speed.", Language: "English", Gender: "Female", Category: "Education"},
	{ID: "James_Corporate_Executive", Name: "James - Corporate Executive", Description: "Confident American male executive, persuasive tone, moderately fast, for corporate presentations.", Language: "English", Gender: "Male", Category: "Business"},
	{ID: "Ingrid_German_Professional", Name: "Ingrid - German Professional", Description: "Sleek, professional German woman, precise diction, brisk speed, for business narration.", Language: "German", Gender: "Female", Category: "Professional"},
	{ID: "Nomsa_South_African_HR", Name: "Nomsa - South African HR", Description: "Warm, accepting HR manager voice, South African accent, moderate and friendly.", Language: "English", Gender: "Female", Category: "Business"},
	{ID: "Wei_Singapore_Analyst", Name: "Wei - Singapore Analyst", Description: "Clear, analytical Singaporean male, sharp delivery, for finance briefings.", Language: "English", Gender: "Male", Category: "Business"},
	{ID: "Camille_French_Entrepreneur", Name: "Camille - French Entrepreneur", Description: "Assertive French female, expressive and inspiring, for entrepreneurship podcasts.", Language: "French", Gender: "Female", Category: "Business"},
	{ID: "Ashley_Customer_Service", Name: "Ashley - Customer Service", Description: "Friendly, helpful US female, varied energy, fast-paced for customer service.", Language: "English", Gender: "Female", Category: "Business"},
	{ID: "Oliver_British_Support", Name: "Oliver - British Support", Description: "Calm British male, patient and measured, for support interactions.", Language: "English", Gender: "Male", Category: "Business"},
	{ID: "Maria_Filipino_Agent", Name: "Maria - Filipino Agent", Description: "Lively Filipino woman, enthusiastic, moderate speed for call center use.", Language: "English", Gender: "Female", Category: "Business"},
	{ID: "Dr_Robert_Medical_Advisor", Name: "Dr. Robert - Medical Advisor", Description: "Gentle, empathetic elderly man, slow pace, perfect for medical advice lines.", Language: "English", Gender: "Male", Category: "Health & Wellness"},
	{ID: "Isabella_Brazilian_Travel", Name: "Isabella - Brazilian Travel", Description: "Youthful, clear Brazilian woman, energetic, for travel booking.", Language: "Portuguese", Gender: "Female", Category: "Travel & Culture"},
	{ID: "Giovanni_Italian_Actor", Name: "Giovanni - Italian Actor", Description: "Dramatic Italian male, theatrical, energetic and intense, for monologue acting.", Language: "Italian", Gender: "Male", Category: "Creative Arts"},
	{ID: "Celeste_French_Performer", Name: "Celeste - French Performer", Description: "Playful French female, animated and charming, swift delivery for children's entertainment.", Language: "French", Gender: "Female", Category: "Creative Arts"},
	{ID: "Samantha_Sarcastic_Host", Name: "Samantha - Sarcastic Host", Description: "Sarcastic, witty American woman, lively, fast-paced, for satirical podcasts.", Language: "English", Gender: "Female", Category: "Entertainment"},
	{ID: "Dmitri_Russian_Philosopher", Name: "Dmitri - Russian Philosopher", Description: "Thoughtful Russian male, introspective tone, slow and contemplative.", Language: "Russian", Gender: "Male", Category: "Education"},
	{ID: "Carmen_Spanish_Celebrant", Name: "Carmen - Spanish Celebrant", Description: "Excited Spanish woman, rapid, passionate, for celebration scenarios.", Language: "Spanish", Gender: "Female", Category: "Entertainment"},
	{ID: "Grandpa_William_Wise", Name: "Grandpa William - Wise", Description: "Wise, kind elderly male, slow and reassuring, classic US accent.", Language: "English", Gender: "Male", Category: "Lifestyle"},
	{ID: "Nana_Irish_Storyteller", Name: "Nana - Irish Storyteller", Description: "Grandmotherly Irish woman, warm, gentle, and measured.", Language: "English", Gender: "Female", Category: "Lifestyle"},
	{ID: "Heinrich_German_Elder", Name: "Heinrich - German Elder", Description: "Strong elderly German man, clear and deliberate, slow pace.", Language: "German", Gender: "Male", Category: "Lifestyle"},
	{ID: "Astrid_Danish_Comfort", Name: "Astrid - Danish Comfort", Description: "Soft Danish woman, comforting, moderate speed.", Language: "Danish", Gender: "Female", Category: "Lifestyle"},
	{ID: "Angus_Scottish_Grandpa", Name: "Angus - Scottish Grandpa", Description: "Jovial Scottish grandfather, robust and fast-paced.", Language: "English", Gender: "Male", Category: "Lifestyle"},
	{ID: "Raj_Indian_Tech_Support", Name: "Raj - Indian Tech Support", Description: "Upbeat Indian male, clear, energetic, for tech support.", Language: "English", Gender: "Male", Category: "Professional"},
	{ID: "Adanna_Nigerian_Speaker", Name: "Adanna - Nigerian Speaker", Description: "Calm Nigerian female, expressive, moderate speed.", Language: "English", Gender: "Female", Category: "Professional"},
	{ID: "Chen_Chinese_Instructor", Name: "Chen - Chinese Instructor", Description: "Animated Chinese male, lively, varied pace, for instruction.", Language: "Chinese", Gender: "Male", Category: "Education"},
	{ID: "Katya_Russian_Professional", Name: "Katya - Russian Professional", Description: "Enthusiastic Russian female, precise, moderately fast.", Language: "Russian", Gender: "Female", Category: "Professional"},
	{ID: "Diego_Mexican_Guide", Name: "Diego - Mexican Guide", Description: "Friendly Mexican male, bright, brisk speed.", Language: "Spanish", Gender: "Male", Category: "Travel & Culture"},
	{ID: "Min_Korean_Confident", Name: "Min - Korean Confident", Description: "Assertive Korean woman, quick, confident tone.", Language: "Korean", Gender: "Female", Category: "Professional"},
	{ID: "Lars_Swedish_Calm", Name: "Lars - Swedish Calm", Description: "Gentle Swedish man, relaxed, slow pace.", Language: "Swedish", Gender: "Male", Category: "Health & Wellness"},
	{ID: "Sophia_Greek_Spirited", Name: "Sophia - Greek Spirited", Description: "Spirited Greek woman, melodic, rapid-fire delivery.", Language: "Greek", Gender: "Female", Category: "Entertainment"},
	{ID: "Omar_Arabic_Professional", Name: "Omar - Arabic Professional", Description: "Neutral Arabic male, professional, moderate speed.", Language: "Arabic", Gender: "Male", Category: "Professional"},
	{ID: "Ayse_Turkish_Energetic", Name: "Ayse - Turkish Energetic", Description: "Energetic Turkish female, lively, moderately fast.", Language: "Turkish", Gender: "Female", Category: "Entertainment"},
	{ID: "Anderson_News_Anchor", Name: "Anderson - News Anchor", Description: "Serious news anchor (male), authoritative, quick, US accent.", Language: "English", Gender: "Male", Category: "News & Media"},
	{ID: "Dr_Sarah_Psychologist", Name: "Dr. Sarah - Psychologist", Description: "Calm psychologist (female), soothing, slow, empathetic tone.", Language: "English", Gender: "Female", Category: "Health & Wellness"},
	{ID: "Mike_Sports_Commentator", Name: "Mike - Sports Commentator", Description: "Animated sports commentator (male), lively, rapid for play-by-play.", Language: "English", Gender: "Male", Category: "Sports & Fitness"},
	{ID: "Nurse_Jennifer_Caring", Name: "Jennifer - Caring Nurse", Description: "Caring nurse (female), gentle, reassuring, moderate speed.", Language: "English", Gender: "Female", Category: "Health & Wellness"},
	{ID: "Zoe_Travel_Vlogger", Name: "Zoe - Travel Vlogger", Description: "Excited travel vlogger (female), upbeat, varied tempo.", Language: "English", Gender: "Female", Category: "Travel & Culture"},
	{ID: "Professor_Cambridge_Scientist", Name: "Professor Cambridge - Scientist", Description: "Analytical scientist (male), precise, moderately fast, British accent.", Language: "English", Gender: "Male", Category: "Education"},
	{ID: "Luna_Creative_Artist", Name: "Luna - Creative Artist", Description: "Creative artist (female), expressive, passionate, moderate speed.", Language: "English", Gender: "Female", Category: "Creative Arts"},
	{ID: "Chef_Antonio_Italian", Name: "Chef Antonio - Italian", Description: "Fun chef (male), playful, dynamic, Italian accent.", Language: "Italian", Gender: "Male", Category: "Entertainment"},
	{ID: "Coach_Michelle_Inspiring", Name: "Coach Michelle - Inspiring", Description: "Inspiring coach (female), energizing, quick, American accent.", Language: "English", Gender: "Female", Category: "Health & Wellness"},
	{ID: "Barrister_James_Australian", Name: "Barrister James - Australian", Description: "Keen lawyer (male), serious, measured, Australian accent.", Language: "English", Gender: "Male", Category: "Professional"},
	{ID: "Jake_Laid_Back_Millennial", Name: "Jake - Laid Back Millennial", Description: "Young adult male, laid-back, casual, slightly slower.", Language: "English", Gender: "Male", Category: "Lifestyle"},
	{ID: "Chloe_Bubbly_Young_Adult", Name: "Chloe - Bubbly Young Adult", Description: "Young adult female, bubbly and energetic, punctual.", Language: "English", Gender: "Female", Category: "Lifestyle"},
	{ID: "Richard_Middle_Aged_Steady", Name: "Richard - Middle Aged Steady", Description: "Middle-aged male, mature, steady pace, American accent.", Language: "English", Gender: "Male", Category: "Professional"},
	{ID: "Patricia_Reserved_Professional", Name: "Patricia - Reserved Professional", Description: "Middle-aged female, reserved, knowledgeable, moderate speed.", Language: "English", Gender: "Female", Category: "Professional"},
	{ID: "Edgar_Contemplative_Elder", Name: "Edgar - Contemplative Elder", Description: "Elderly male, contemplative, slow, poetic delivery.", Language: "English", Gender: "Male", Category: "Lifestyle"},
	{ID: "Villain_Maximilian_Dark", Name: "Maximilian - Dark Villain", Description: "Cartoon villain voice (male), exaggerated, deep, rapid-fire.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Giggles_Comic_Relief", Name: "Giggles - Comic Relief", Description: "Comic relief (female), high-pitched, energetic, playful.", Language: "English", Gender: "Female", Category: "Entertainment"},
	{ID: "AIDEN_Robot_Voice", Name: "AIDEN - Robot Voice", Description: "Robot voice (neutral), synthetic, consistent fast, monotone.", Language: "English", Gender: "Neutral", Category: "Technology"},
	{ID: "Lyralei_Fantasy_Elf", Name: "Lyralei - Fantasy Elf", Description: "Fantasy elf (female), melodic, moderate speed.", Language: "English", Gender: "Female", Category: "Creative Arts"},
	{ID: "Captain_Blackbeard_Pirate", Name: "Captain Blackbeard - Pirate", Description: "Pirate voice (male), raspy, lively, quick tempo.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Ryan_Lifestyle_Host", Name: "Ryan - Lifestyle Host", Description: "Friendly male host, comfortable pace, engaging tone, for lifestyle podcasts.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Jess_Comedy_Podcaster", Name: "Jess - Comedy Podcaster", Description: "Sarcastic female host, witty, brisk, for comedy podcasts.", Language: "English", Gender: "Female", Category: "Entertainment"},
	{ID: "Alex_Chill_Teen_Host", Name: "Alex - Chill Teen Host", Description: "Chill teen host, relaxed, conversational, moderate speed.", Language: "English", Gender: "Neutral", Category: "Lifestyle"},
	{ID: "Brad_Sports_Enthusiast", Name: "Brad - Sports Enthusiast", Description: "Energetic sports host (male), excited, fast-paced.", Language: "English", Gender: "Male", Category: "Sports & Fitness"},
	{ID: "Sophia_Culture_Critic", Name: "Sophia - Culture Critic", Description: "Thoughtful culture host (female), reflective, slow to moderate.", Language: "English", Gender: "Female", Category: "Travel & Culture"},
	{ID: "Melody_Pop_Singer", Name: "Melody - Pop Singer", Description: "Pop singer (female), expressive, dynamic, for lyric breakdowns.", Language: "English", Gender: "Female", Category: "Creative Arts"},
	{ID: "Maestro_Classical_Voice", Name: "Maestro - Classical Voice", Description: "Classical singer (male), warm, controlled, slow.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Rex_Rock_Vocalist", Name: "Rex - Rock Vocalist", Description: "Rock band member (male), gritty, energetic, fast.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Jazz_Velvet_Crooner", Name: "Jazz - Velvet Crooner", Description: "Jazz crooner (female), smooth, playful, moderate.", Language: "English", Gender: "Female", Category: "Creative Arts"},
	{ID: "Aria_Opera_Narrator", Name: "Aria - Opera Narrator", Description: "Opera narrator (male), dramatic, slow and expressive.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Joy_Bubbly_Energy", Name: "Joy - Bubbly Energy", Description: "Joyful, bubbly young woman, fast, high energy.", Language: "English", Gender: "Female", Category: "Lifestyle"},
	{ID: "Melvin_Sorrowful_Gentle", Name: "Melvin - Sorrowful Gentle", Description: "Sorrowful, soft-spoken elderly man, slow, gentle.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Victor_Angry_Forceful", Name: "Victor - Angry Forceful", Description: "Angry middle-aged male, forceful, brisk.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Nervous_Nellie_Anxious", Name: "Nellie - Nervous Anxious", Description: "Nervous young female, shaky, quick-paced.", Language: "English", Gender: "Female", Category: "Creative Arts"},
	{ID: "CEO_Alexander_Confident", Name: "Alexander - CEO Confident", Description: "Confident CEO voice (male), clear, moderate, inspiring.", Language: "English", Gender: "Male", Category: "Business"},
	{ID: "Grandma_Rose_Loving", Name: "Rose - Loving Grandma", Description: "Loving grandmother voice, calm, slow pace.", Language: "English", Gender: "Female", Category: "Lifestyle"},
	{ID: "Student_Sam_Anxious", Name: "Sam - Anxious Student", Description: "Anxious student voice, rapid, uneven.", Language: "English", Gender: "Neutral", Category: "Lifestyle"},
	{ID: "Zen_Meditation_Guide", Name: "Zen - Meditation Guide", Description: "Peaceful meditation guide (female), slow, soothing.", Language: "English", Gender: "Female", Category: "Health & Wellness"},
	{ID: "Thriller_Vincent_Suspense", Name: "Vincent - Thriller Suspense", Description: "Suspenseful thriller narrator (male), deliberate, slow.", Language: "English", Gender: "Male", Category: "Entertainment"},
	{ID: "Pitch_Perfect_Pete", Name: "Pete - Pitch Perfect", Description: "Slick advertising pitchman (male), enthusiastic, brisk, US accent.", Language: "English", Gender: "Male", Category: "Business"},
	{ID: "Luxury_Grace_Ambassador", Name: "Grace - Luxury Ambassador", Description: "Calm luxury brand ambassador (female), smooth, measured.", Language: "English", Gender: "Female", Category: "Business"},
	{ID: "Review_Rick_Enthusiastic", Name: "Rick - Enthusiastic Reviewer", Description: "Ebullient product reviewer (male), engaging, fast-paced.", Language: "English", Gender: "Male", Category: "Business"},
	{ID: "Fitness_Fiona_Motivator", Name: "Fiona - Fitness Motivator", Description: "Aspirational fitness coach (female), motivating, dynamic.", Language: "English", Gender: "Female", Category: "Sports & Fitness"},
	{ID: "Advisor_Trust_Financial", Name: "Trust - Financial Advisor", Description: "Trustworthy financial advisor (male), measured, professional.", Language: "English", Gender: "Male", Category: "Business"},
	{ID: "Storyteller_Magnus_Epic", Name: "Magnus - Epic Storyteller", Description: "Dramatic storyteller (male), suspenseful, variable speed.", Language: "English", Gender: "Male", Category: "Creative Arts"},
	{ID: "Cafe_Brigitte_French", Name: "Brigitte - French Cafe", Description: "Charming French café server (female), warm, rhythmic.", Language: "French", Gender: "Female", Category: "Business"},
	{ID: "Politician_Young_Driven", Name: "Young Politician - Driven", Description: "Driven young politician (male), passionate, rapid.", Language: "English", Gender: "Male", Category: "News & Media"},
	{ID: "Mystic_Luna_Healer", Name: "Luna - Mystic Healer", Description: "Mystic healer (female), calm, slow, mysterious.", Language: "English", Gender: "Female", Category: "Creative Arts"},
	{ID: "Startup_Phoenix_Founder", Name: "Phoenix - Startup Founder", Description: "Tech startup founder (gender-neutral), energetic, modern, slightly fast.", Language: "English", Gender: "Neutral", Category: "Technology"},
}
